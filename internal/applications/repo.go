package applications

import "context"

// Repo defines persistence operations for applications. The store is
// append-only: records are never deleted and only status is mutable.
type Repo interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
}
