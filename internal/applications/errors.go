package applications

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("application not found")
	// ErrJobNotFound is returned when a submission references a missing job.
	ErrJobNotFound = errors.New("job not found")
	// ErrResumeRequired is returned when a submission carries no file.
	ErrResumeRequired = errors.New("Please upload a resume file")
)

// MissingFieldsError reports every required field absent from a submission,
// already translated to display labels.
type MissingFieldsError struct {
	Labels []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Labels, ", ")
}
