package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName is returned for names that cannot name a stored resume.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName normalizes a client-supplied file name before it is used
// to look up a stored resume. Traversal patterns are rejected outright;
// path separators are flattened so the name can only address a single
// object-store key.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") || strings.ContainsRune(name, 0) {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
