package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. Custom fields are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `
id, job_id, full_name, email, phone, location, work_auth, candidate_role,
experience, linkedin, portfolio, expected_salary, notice_period, cover_letter,
preferred_location, referral, resume_url, custom_fields, status, created_at, updated_at`

// Create inserts a new application and returns it with the assigned ID.
func (r *PGRepo) Create(ctx context.Context, app Application) (Application, error) {
	const query = `
INSERT INTO applications (
    job_id, full_name, email, phone, location, work_auth, candidate_role,
    experience, linkedin, portfolio, expected_salary, notice_period,
    cover_letter, preferred_location, referral, resume_url, custom_fields,
    status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
RETURNING id`

	customJSON, err := json.Marshal(app.CustomFields)
	if err != nil {
		return Application{}, fmt.Errorf("marshal custom fields: %w", err)
	}

	err = r.DB.QueryRowContext(ctx, query,
		app.JobID,
		app.FullName,
		app.Email,
		app.Phone,
		app.Location,
		app.WorkAuth,
		app.CurrentRole,
		app.Experience,
		app.LinkedIn,
		app.Portfolio,
		app.ExpectedSalary,
		app.NoticePeriod,
		app.CoverLetter,
		app.PreferredLocation,
		app.Referral,
		app.ResumeURL,
		customJSON,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		return Application{}, err
	}
	return app, nil
}

// GetByID returns an application by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

// UpdateStatus overwrites the status and bumps updated_at.
func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status string) (Application, error) {
	query := `
UPDATE applications SET status = $2, updated_at = $3
WHERE id = $1
RETURNING ` + applicationColumns

	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id, status, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

// List returns all applications in submission order.
func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY id`
	return r.queryApplications(ctx, query)
}

// ListByJob returns the applications submitted against a job, oldest first.
func (r *PGRepo) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY id`
	return r.queryApplications(ctx, query, jobID)
}

func (r *PGRepo) queryApplications(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var customJSON []byte
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.Location,
		&app.WorkAuth,
		&app.CurrentRole,
		&app.Experience,
		&app.LinkedIn,
		&app.Portfolio,
		&app.ExpectedSalary,
		&app.NoticePeriod,
		&app.CoverLetter,
		&app.PreferredLocation,
		&app.Referral,
		&app.ResumeURL,
		&customJSON,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	if len(customJSON) > 0 {
		if err := json.Unmarshal(customJSON, &app.CustomFields); err != nil {
			return Application{}, fmt.Errorf("unmarshal custom fields: %w", err)
		}
	}
	if app.CustomFields == nil {
		app.CustomFields = []CustomFieldValue{}
	}
	return app, nil
}

var _ Repo = (*PGRepo)(nil)
