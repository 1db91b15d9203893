package applications

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/storage/object/local"
	"jobboard-backend/internal/uploads"
)

func newTestService(t *testing.T) (*Service, *jobs.MemoryRepo) {
	t.Helper()
	jobRepo := jobs.NewMemoryRepo()
	intake := uploads.NewIntake(local.New(t.TempDir()))
	svc := NewService(NewMemoryRepo(), jobRepo, intake)
	return svc, jobRepo
}

func seedJob(t *testing.T, repo *jobs.MemoryRepo, required ...string) jobs.Job {
	t.Helper()
	job, err := repo.Create(context.Background(), jobs.Job{
		Title: "Backend Engineer",
		ApplicationForm: jobs.ApplicationForm{
			RequiredFields: required,
			CustomFields:   []jobs.CustomFieldDef{},
		},
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func pdfUpload(content string) *ResumeUpload {
	return &ResumeUpload{
		FileName:  "resume.pdf",
		SizeBytes: int64(len(content)),
		Reader:    bytes.NewReader([]byte(content)),
	}
}

func TestSubmitUnknownJobFails(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		JobID:  999,
		Fields: map[string]string{"email": "a@b.com"},
		Resume: pdfUpload("pdf"),
	})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("error = %v, want ErrJobNotFound", err)
	}
}

func TestSubmitCollectsAllMissingRequiredFields(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo, "email", "linkedin", "github")

	_, err := svc.Submit(context.Background(), SubmitRequest{
		JobID: job.ID,
		Fields: map[string]string{
			"email":    "a@b.com",
			"linkedin": "",
			"fullName": "Ada",
		},
		Resume: pdfUpload("pdf"),
	})

	var missingErr *MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error = %v, want MissingFieldsError", err)
	}
	want := []string{"LinkedIn Profile", "GitHub Profile"}
	if len(missingErr.Labels) != len(want) {
		t.Fatalf("labels = %v, want %v", missingErr.Labels, want)
	}
	for i, label := range want {
		if missingErr.Labels[i] != label {
			t.Errorf("labels[%d] = %q, want %q", i, missingErr.Labels[i], label)
		}
	}
	if got := missingErr.Error(); got != "Missing required fields: LinkedIn Profile, GitHub Profile" {
		t.Errorf("message = %q", got)
	}
}

func TestSubmitMissingUncataloguedFieldUsesRawIdentifier(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo, "email")

	_, err := svc.Submit(context.Background(), SubmitRequest{
		JobID:  job.ID,
		Fields: map[string]string{"email": ""},
		Resume: pdfUpload("pdf"),
	})

	var missingErr *MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error = %v, want MissingFieldsError", err)
	}
	if len(missingErr.Labels) != 1 || missingErr.Labels[0] != "email" {
		t.Fatalf("labels = %v, want [email]", missingErr.Labels)
	}
}

func TestSubmitWithoutResumeFails(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		JobID:  job.ID,
		Fields: map[string]string{"fullName": "Ada"},
	})
	if !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("error = %v, want ErrResumeRequired", err)
	}
}

func TestSubmitPropagatesIntakeErrorsUnwrapped(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		JobID:  job.ID,
		Fields: map[string]string{},
		Resume: &ResumeUpload{FileName: "resume.exe", SizeBytes: 4, Reader: bytes.NewReader([]byte("exe!"))},
	})
	if !errors.Is(err, uploads.ErrInvalidFileType) {
		t.Fatalf("error = %v, want ErrInvalidFileType", err)
	}

	_, err = svc.Submit(context.Background(), SubmitRequest{
		JobID:  job.ID,
		Fields: map[string]string{},
		Resume: &ResumeUpload{FileName: "resume.pdf", SizeBytes: uploads.MaxFileBytes + 1, Reader: bytes.NewReader(nil)},
	})
	if !errors.Is(err, uploads.ErrFileTooLarge) {
		t.Fatalf("error = %v, want ErrFileTooLarge", err)
	}
}

func TestSubmitAssemblesNormalizedRecord(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo, "email")

	app, err := svc.Submit(context.Background(), SubmitRequest{
		JobID: job.ID,
		Fields: map[string]string{
			"fullName":       "Ada Lovelace",
			"email":          "ada@example.com",
			"currentRole":    "Engineer",
			"expectedSalary": "120000",
			"unknownKey":     "ignored",
		},
		Custom: []CustomFieldValue{
			{Field: "Favorite Language", Value: "Go"},
		},
		Resume: pdfUpload("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if app.ID != 1 {
		t.Errorf("ID = %d, want 1", app.ID)
	}
	if app.Status != StatusApplied {
		t.Errorf("Status = %q, want %q", app.Status, StatusApplied)
	}
	if app.FullName != "Ada Lovelace" || app.Email != "ada@example.com" || app.CurrentRole != "Engineer" || app.ExpectedSalary != "120000" {
		t.Errorf("known fields not copied: %+v", app)
	}
	if !strings.HasPrefix(app.ResumeURL, uploads.PublicPathPrefix) {
		t.Errorf("ResumeURL = %q, want %q prefix", app.ResumeURL, uploads.PublicPathPrefix)
	}
	if len(app.CustomFields) != 1 || app.CustomFields[0].Field != "Favorite Language" || app.CustomFields[0].Value != "Go" {
		t.Errorf("CustomFields = %+v", app.CustomFields)
	}
	if app.CreatedAt.IsZero() || !app.CreatedAt.Equal(app.UpdatedAt) {
		t.Errorf("timestamps not set together: created=%v updated=%v", app.CreatedAt, app.UpdatedAt)
	}
}

func TestSubmitTwiceProducesDistinctRecords(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo)
	fields := map[string]string{"fullName": "Ada", "email": "ada@example.com"}

	first, err := svc.Submit(context.Background(), SubmitRequest{JobID: job.ID, Fields: fields, Resume: pdfUpload("pdf")})
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), SubmitRequest{JobID: job.ID, Fields: fields, Resume: pdfUpload("pdf")})
	if err != nil {
		t.Fatalf("second Submit: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("duplicate submissions share ID %d", first.ID)
	}
	if first.ResumeURL == second.ResumeURL {
		t.Errorf("duplicate submissions share resume reference %q", first.ResumeURL)
	}

	list, err := svc.ListByJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByJob returned %d records, want 2", len(list))
	}
}

func TestSetStatusUnknownApplicationDoesNotMutateStore(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo)

	if _, err := svc.Submit(context.Background(), SubmitRequest{JobID: job.ID, Fields: map[string]string{}, Resume: pdfUpload("pdf")}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.SetStatus(context.Background(), 42, "screening"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Status != StatusApplied {
		t.Fatalf("store mutated by failed SetStatus: %+v", list)
	}
}

func TestSetStatusOverwritesUnconditionally(t *testing.T) {
	svc, jobRepo := newTestService(t)
	job := seedJob(t, jobRepo)

	app, err := svc.Submit(context.Background(), SubmitRequest{JobID: job.ID, Fields: map[string]string{}, Resume: pdfUpload("pdf")})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	updated, err := svc.SetStatus(context.Background(), app.ID, "whatever-status")
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != "whatever-status" {
		t.Errorf("Status = %q", updated.Status)
	}
	if updated.ResumeURL != app.ResumeURL {
		t.Errorf("resume reference changed on status update")
	}
	if !updated.UpdatedAt.After(app.UpdatedAt) && !updated.UpdatedAt.Equal(app.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards")
	}
}
