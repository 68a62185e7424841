package employee

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Repository persists employees. Get reports absence with ok=false; Update and Delete
// return *NotFoundError for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int64) (Employee, bool, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
}

// MemoryRepository keeps employees in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]Employee
}

// NewMemoryRepository returns an empty store whose first id is 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]Employee)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employees := make([]Employee, 0, len(r.rows))
	for _, id := range slices.Sorted(maps.Keys(r.rows)) {
		employees = append(employees, r.rows[id])
	}
	return employees, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (Employee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rows[id]
	return e, ok, nil
}

func (r *MemoryRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	r.rows[e.ID] = e
	return e, nil
}

func (r *MemoryRepository) Update(ctx context.Context, e Employee) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[e.ID]; !ok {
		return Employee{}, &NotFoundError{ID: e.ID}
	}
	r.rows[e.ID] = e
	return e, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.rows, id)
	return nil
}
