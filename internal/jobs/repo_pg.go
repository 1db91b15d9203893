package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. The application form is stored as
// JSONB alongside the scalar columns.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `
id, company_id, title, department, employment_type, work_mode, location,
description, responsibilities, required_qualifications, preferred_qualifications,
salary_range, benefits, posting_date, application_deadline, hiring_manager,
recruiter_contact, equal_opportunity_statement, approval_status,
application_form, created_at, updated_at`

// Create inserts a new job and returns it with the assigned ID.
func (r *PGRepo) Create(ctx context.Context, job Job) (Job, error) {
	const query = `
INSERT INTO jobs (
    company_id, title, department, employment_type, work_mode, location,
    description, responsibilities, required_qualifications, preferred_qualifications,
    salary_range, benefits, posting_date, application_deadline, hiring_manager,
    recruiter_contact, equal_opportunity_statement, approval_status,
    application_form, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
RETURNING id`

	formJSON, err := json.Marshal(job.ApplicationForm)
	if err != nil {
		return Job{}, fmt.Errorf("marshal application form: %w", err)
	}

	var deadline sql.NullTime
	if job.ApplicationDeadline != nil {
		deadline = sql.NullTime{Time: *job.ApplicationDeadline, Valid: true}
	}

	err = r.DB.QueryRowContext(ctx, query,
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
		deadline,
		job.HiringManager,
		job.RecruiterContact,
		job.EqualOpportunityStatement,
		job.ApprovalStatus,
		formJSON,
		job.CreatedAt,
		job.UpdatedAt,
	).Scan(&job.ID)
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

// GetByID returns a job by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// List returns all jobs in creation order.
func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`
	return r.queryJobs(ctx, query)
}

// ListByCompany returns the jobs posted by a company, oldest first.
func (r *PGRepo) ListByCompany(ctx context.Context, companyID int64) ([]Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1 ORDER BY id`
	return r.queryJobs(ctx, query, companyID)
}

// Update shallow-merges the patch inside a transaction so concurrent updates
// cannot interleave.
func (r *PGRepo) Update(ctx context.Context, id int64, patch Patch) (Job, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Job{}, err
	}
	defer tx.Rollback()

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1 FOR UPDATE`
	job, err := scanJob(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}

	patch.Apply(&job, time.Now().UTC())

	formJSON, err := json.Marshal(job.ApplicationForm)
	if err != nil {
		return Job{}, fmt.Errorf("marshal application form: %w", err)
	}
	var deadline sql.NullTime
	if job.ApplicationDeadline != nil {
		deadline = sql.NullTime{Time: *job.ApplicationDeadline, Valid: true}
	}

	const update = `
UPDATE jobs SET
    company_id = $2, title = $3, department = $4, employment_type = $5,
    work_mode = $6, location = $7, description = $8, responsibilities = $9,
    required_qualifications = $10, preferred_qualifications = $11,
    salary_range = $12, benefits = $13, posting_date = $14,
    application_deadline = $15, hiring_manager = $16, recruiter_contact = $17,
    equal_opportunity_statement = $18, approval_status = $19,
    application_form = $20, updated_at = $21
WHERE id = $1`

	if _, err := tx.ExecContext(ctx, update,
		job.ID,
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
		deadline,
		job.HiringManager,
		job.RecruiterContact,
		job.EqualOpportunityStatement,
		job.ApprovalStatus,
		formJSON,
		job.UpdatedAt,
	); err != nil {
		return Job{}, err
	}

	if err := tx.Commit(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Delete removes a job.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) queryJobs(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var deadline sql.NullTime
	var formJSON []byte
	err := row.Scan(
		&job.ID,
		&job.CompanyID,
		&job.Title,
		&job.Department,
		&job.EmploymentType,
		&job.WorkMode,
		&job.Location,
		&job.Description,
		&job.Responsibilities,
		&job.RequiredQualifications,
		&job.PreferredQualifications,
		&job.SalaryRange,
		&job.Benefits,
		&job.PostingDate,
		&deadline,
		&job.HiringManager,
		&job.RecruiterContact,
		&job.EqualOpportunityStatement,
		&job.ApprovalStatus,
		&formJSON,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	if deadline.Valid {
		job.ApplicationDeadline = &deadline.Time
	}
	if len(formJSON) > 0 {
		if err := json.Unmarshal(formJSON, &job.ApplicationForm); err != nil {
			return Job{}, fmt.Errorf("unmarshal application form: %w", err)
		}
	}
	job.ApplicationForm.Normalize()
	return job, nil
}

var _ Repo = (*PGRepo)(nil)
