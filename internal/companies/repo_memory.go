package companies

import (
	"context"
	"sync"
)

// MemoryRepo stores companies in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Company
	order  []int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[int64]Company)}
}

// Create assigns the next ID and stores the company.
func (r *MemoryRepo) Create(ctx context.Context, company Company) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	company.ID = r.nextID
	r.byID[company.ID] = company
	r.order = append(r.order, company.ID)
	return company, nil
}

// GetByID returns a company by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Company, error) {
	if err := ctx.Err(); err != nil {
		return Company{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	company, ok := r.byID[id]
	if !ok {
		return Company{}, ErrNotFound
	}
	return company, nil
}

// List returns all companies in creation order.
func (r *MemoryRepo) List(ctx context.Context) ([]Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Company, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
