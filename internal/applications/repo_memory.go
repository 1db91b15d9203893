package applications

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores applications in memory and is safe for concurrent use.
// IDs come from a counter incremented under the lock, so two concurrent
// submissions can never share one.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Application
	order  []int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[int64]Application)}
}

// Create assigns the next ID and appends the application.
func (r *MemoryRepo) Create(ctx context.Context, app Application) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	app.ID = r.nextID
	r.byID[app.ID] = app
	r.order = append(r.order, app.ID)
	return app, nil
}

// GetByID returns an application by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

// UpdateStatus overwrites the status and bumps UpdatedAt. Any status string
// is accepted.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, id int64, status string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	r.byID[id] = app
	return app, nil
}

// List returns all applications in submission order.
func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// ListByJob returns the applications submitted against a job, oldest first.
func (r *MemoryRepo) ListByJob(ctx context.Context, jobID int64) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Application{}
	for _, id := range r.order {
		if app := r.byID[id]; app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
