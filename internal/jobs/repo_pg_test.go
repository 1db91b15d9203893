package jobs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateReturnsAssignedID(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	job := Job{
		CompanyID:      2,
		Title:          "Backend Engineer",
		ApprovalStatus: ApprovalPending,
		PostingDate:    now,
		ApplicationForm: ApplicationForm{
			RequiredFields: []string{"email"},
			CustomFields:   []CustomFieldDef{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO jobs").
		WithArgs(
			job.CompanyID,
			job.Title,
			job.Department,
			job.EmploymentType,
			job.WorkMode,
			job.Location,
			job.Description,
			job.Responsibilities,
			job.RequiredQualifications,
			job.PreferredQualifications,
			job.SalaryRange,
			job.Benefits,
			job.PostingDate,
			sql.NullTime{},
			job.HiringManager,
			job.RecruiterContact,
			job.EqualOpportunityStatement,
			job.ApprovalStatus,
			sqlmock.AnyArg(), // application_form JSONB
			job.CreatedAt,
			job.UpdatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := repo.Create(context.Background(), job)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("id = %d, want 7", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesApplicationForm(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "company_id", "title", "department", "employment_type", "work_mode",
		"location", "description", "responsibilities", "required_qualifications",
		"preferred_qualifications", "salary_range", "benefits", "posting_date",
		"application_deadline", "hiring_manager", "recruiter_contact",
		"equal_opportunity_statement", "approval_status", "application_form",
		"created_at", "updated_at",
	}).AddRow(
		int64(3), int64(1), "SRE", "", "", "", "", "", "", "", "", "", "",
		now, nil, "", "", "", ApprovalApproved,
		[]byte(`{"requiredFields":["github"],"customFields":[{"label":"Referrer","type":"text","required":false}]}`),
		now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id").WithArgs(int64(3)).WillReturnRows(rows)

	job, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(job.ApplicationForm.RequiredFields) != 1 || job.ApplicationForm.RequiredFields[0] != "github" {
		t.Errorf("requiredFields = %v", job.ApplicationForm.RequiredFields)
	}
	if len(job.ApplicationForm.CustomFields) != 1 || job.ApplicationForm.CustomFields[0].Label != "Referrer" {
		t.Errorf("customFields = %v", job.ApplicationForm.CustomFields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM jobs").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
