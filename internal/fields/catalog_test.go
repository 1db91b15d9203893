package fields

import "testing"

func TestLabelOfKnownFields(t *testing.T) {
	cases := map[string]string{
		"github":        "GitHub Profile",
		"portfolio":     "Portfolio/Projects",
		"leetcode":      "LeetCode Profile",
		"linkedin":      "LinkedIn Profile",
		"stackoverflow": "Stack Overflow Profile",
		"kaggle":        "Kaggle Profile",
	}
	for id, want := range cases {
		if got := LabelOf(id); got != want {
			t.Errorf("LabelOf(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestLabelOfUnknownFieldPassesThrough(t *testing.T) {
	if got := LabelOf("email"); got != "email" {
		t.Errorf("LabelOf(\"email\") = %q, want \"email\"", got)
	}
	if got := LabelOf(""); got != "" {
		t.Errorf("LabelOf(\"\") = %q, want \"\"", got)
	}
}

func TestTypeOf(t *testing.T) {
	for _, id := range []string{"github", "portfolio", "linkedin", "leetcode", "stackoverflow", "kaggle"} {
		if got := TypeOf(id); got != TypeURL {
			t.Errorf("TypeOf(%q) = %q, want %q", id, got, TypeURL)
		}
	}
	for _, id := range []string{"email", "fullName", "coverLetter", ""} {
		if got := TypeOf(id); got != TypeText {
			t.Errorf("TypeOf(%q) = %q, want %q", id, got, TypeText)
		}
	}
}
