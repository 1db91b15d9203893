package companies

import "context"

// Repo defines persistence operations for companies.
type Repo interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id int64) (Company, error)
	List(ctx context.Context) ([]Company, error)
}
