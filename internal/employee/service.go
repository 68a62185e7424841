package employee

import (
	"context"
)

// Operations is the set of employee use cases served over HTTP.
type Operations interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (Employee, bool, error)
	CreateEmployee(ctx context.Context, e Employee) (Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch Employee) (Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (map[string]bool, error)
}

// Service orchestrates employee CRUD against a Repository.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAllEmployees returns every employee in store order.
func (s *Service) GetAllEmployees(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// GetEmployeeByID reports absence with ok=false rather than an error.
func (s *Service) GetEmployeeByID(ctx context.Context, id int64) (Employee, bool, error) {
	return s.repo.Get(ctx, id)
}

// CreateEmployee persists e under a store-assigned id.
func (s *Service) CreateEmployee(ctx context.Context, e Employee) (Employee, error) {
	e.ID = 0
	return s.repo.Create(ctx, e)
}

// UpdateEmployee overwrites every mutable field of employee id with patch.
func (s *Service) UpdateEmployee(ctx context.Context, id int64, patch Employee) (Employee, error) {
	current, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if !ok {
		return Employee{}, &NotFoundError{ID: id}
	}
	current.FirstName = patch.FirstName
	current.LastName = patch.LastName
	current.Email = patch.Email
	return s.repo.Update(ctx, current)
}

// DeleteEmployee removes employee id and confirms with {"deleted": true}.
func (s *Service) DeleteEmployee(ctx context.Context, id int64) (map[string]bool, error) {
	_, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}
