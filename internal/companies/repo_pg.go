package companies

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new company and returns it with the assigned ID.
func (r *PGRepo) Create(ctx context.Context, company Company) (Company, error) {
	const query = `
INSERT INTO companies (name, logo_url, primary_color, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now().UTC()
	}
	err := r.DB.QueryRowContext(ctx, query,
		company.Name,
		company.LogoURL,
		company.PrimaryColor,
		company.CreatedAt,
	).Scan(&company.ID)
	if err != nil {
		return Company{}, err
	}
	return company, nil
}

// GetByID returns a company by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Company, error) {
	const query = `
SELECT id, name, logo_url, primary_color, created_at
FROM companies
WHERE id = $1`

	var company Company
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.LogoURL,
		&company.PrimaryColor,
		&company.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, err
	}
	return company, nil
}

// List returns all companies in creation order.
func (r *PGRepo) List(ctx context.Context) ([]Company, error) {
	const query = `
SELECT id, name, logo_url, primary_color, created_at
FROM companies
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Company{}
	for rows.Next() {
		var company Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.LogoURL,
			&company.PrimaryColor,
			&company.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, company)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
