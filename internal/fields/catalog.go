// Package fields is the static catalog mapping application-form field
// identifiers to display labels and value types.
package fields

// Field value types.
const (
	TypeURL  = "url"
	TypeText = "text"
)

var labels = map[string]string{
	"github":        "GitHub Profile",
	"portfolio":     "Portfolio/Projects",
	"leetcode":      "LeetCode Profile",
	"linkedin":      "LinkedIn Profile",
	"stackoverflow": "Stack Overflow Profile",
	"kaggle":        "Kaggle Profile",
}

// LabelOf returns the human-readable label for a field identifier. Unknown
// identifiers are returned unchanged so they act as their own label.
func LabelOf(fieldID string) string {
	if label, ok := labels[fieldID]; ok {
		return label
	}
	return fieldID
}

// TypeOf returns "url" for profile/portfolio link fields and "text" for
// everything else.
func TypeOf(fieldID string) string {
	if _, ok := labels[fieldID]; ok {
		return TypeURL
	}
	return TypeText
}
