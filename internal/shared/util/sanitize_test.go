package util

import (
	"errors"
	"testing"
)

func TestSanitizeFileNameReplacesSeparators(t *testing.T) {
	got, err := SanitizeFileName("dir/sub\\resume.pdf")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "dir_sub_resume.pdf" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	for _, name := range []string{"../../etc/passwd", "a\x00b.pdf"} {
		if _, err := SanitizeFileName(name); !errors.Is(err, ErrInvalidFileName) {
			t.Errorf("SanitizeFileName(%q) error = %v, want ErrInvalidFileName", name, err)
		}
	}
}

func TestSanitizeFileNameRejectsEmpty(t *testing.T) {
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}
