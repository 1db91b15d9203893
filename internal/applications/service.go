// Package applications implements the submission pipeline: a candidate's
// form data is validated against the target job's application-form schema,
// the resume file is stored, and a normalized record is appended.
package applications

import (
	"context"
	"io"
	"strings"
	"time"

	"jobboard-backend/internal/fields"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/telemetry"
	"jobboard-backend/internal/uploads"
)

// JobLookup is the slice of the job store the pipeline needs.
type JobLookup interface {
	GetByID(ctx context.Context, id int64) (jobs.Job, error)
}

// ResumeUpload is the raw uploaded file accompanying a submission.
type ResumeUpload struct {
	FileName  string
	SizeBytes int64
	Reader    io.Reader
}

// SubmitRequest carries one candidate submission. Fields holds the known
// field values keyed by field identifier; Custom holds the job-defined
// custom fields as an explicit tagged list.
type SubmitRequest struct {
	JobID  int64
	Fields map[string]string
	Custom []CustomFieldValue
	Resume *ResumeUpload
}

// Service runs the submission pipeline.
type Service struct {
	Repo   Repo
	Jobs   JobLookup
	Intake *uploads.Intake
}

// NewService constructs a Service.
func NewService(repo Repo, jobLookup JobLookup, intake *uploads.Intake) *Service {
	return &Service{Repo: repo, Jobs: jobLookup, Intake: intake}
}

// Submit validates the submission against the job's schema, stores the
// resume and appends a new application record. Duplicate submissions are
// intentionally accepted; each produces its own record. If storing the
// record fails after the file was written, the file is left behind — an
// orphaned upload is a known, non-corrupting leak.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Application, error) {
	start := time.Now()

	job, err := s.Jobs.GetByID(ctx, req.JobID)
	if err != nil {
		metrics.IncApplicationsRejected()
		return Application{}, ErrJobNotFound
	}

	if missing := missingRequiredFields(job.ApplicationForm.RequiredFields, req.Fields); len(missing) > 0 {
		metrics.IncApplicationsRejected()
		telemetry.Warn("application.rejected", map[string]any{
			"job_id":         req.JobID,
			"missing_fields": missing,
		})
		return Application{}, &MissingFieldsError{Labels: missing}
	}

	if req.Resume == nil {
		metrics.IncApplicationsRejected()
		return Application{}, ErrResumeRequired
	}

	stored, err := s.Intake.StoreFile(ctx, "resumeFile", req.Resume.FileName, req.Resume.SizeBytes, req.Resume.Reader)
	if err != nil {
		// Intake errors surface to the caller unwrapped.
		metrics.IncApplicationsRejected()
		return Application{}, err
	}
	metrics.IncResumesStored()

	now := time.Now().UTC()
	app := Application{
		JobID:        req.JobID,
		ResumeURL:    stored.URL,
		CustomFields: append([]CustomFieldValue{}, req.Custom...),
		Status:       StatusApplied,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyKnownFields(&app, req.Fields)

	created, err := s.Repo.Create(ctx, app)
	if err != nil {
		metrics.IncApplicationsRejected()
		return Application{}, err
	}

	metrics.IncApplicationsSubmitted()
	metrics.ObserveSubmissionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("application.submitted", map[string]any{
		"application_id": created.ID,
		"job_id":         created.JobID,
		"candidate":      created.FullName,
		"status":         created.Status,
	})
	return created, nil
}

// SetStatus overwrites an application's status. Any string is accepted;
// there is no transition restriction.
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (Application, error) {
	app, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return Application{}, err
	}
	telemetry.Info("application.status_updated", map[string]any{
		"application_id": app.ID,
		"new_status":     status,
		"candidate":      app.FullName,
	})
	return app, nil
}

// List returns every application.
func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.Repo.List(ctx)
}

// ListByJob returns the applications for one job.
func (s *Service) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	return s.Repo.ListByJob(ctx, jobID)
}

// missingRequiredFields collects the display labels of every required field
// whose submitted value is empty, in schema order.
func missingRequiredFields(required []string, submitted map[string]string) []string {
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(submitted[field]) == "" {
			missing = append(missing, fields.LabelOf(field))
		}
	}
	return missing
}
