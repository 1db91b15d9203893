package jobs

import "context"

// Repo defines persistence operations for jobs.
type Repo interface {
	Create(ctx context.Context, job Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context) ([]Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Job, error)
	Update(ctx context.Context, id int64, patch Patch) (Job, error)
	Delete(ctx context.Context, id int64) error
}
