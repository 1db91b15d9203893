package uploads

import "errors"

var (
	// ErrInvalidFileType is returned when the original file name's extension
	// is not on the allow-list.
	ErrInvalidFileType = errors.New("Invalid file type. Only PDF, DOC, and DOCX files are allowed.")
	// ErrFileTooLarge is returned when the declared size exceeds the ceiling.
	ErrFileTooLarge = errors.New("File too large. Resumes must be 5MB or smaller.")
	// ErrNotFound is returned when a stored file cannot be opened.
	ErrNotFound = errors.New("file not found")
)
