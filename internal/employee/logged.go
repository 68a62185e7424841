package employee

import (
	"context"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/intercept"
)

// Declaring type names reported by the logging advice.
const (
	RepositoryType = "employee.Repository"
	ServiceType    = "employee.Service"
	HandlerType    = "employee.Handler"
)

// LoggedRepository applies logging advice to every Repository call.
type LoggedRepository struct {
	next    Repository
	advisor *intercept.Advisor
}

// NewLoggedRepository decorates next.
func NewLoggedRepository(next Repository, advisor *intercept.Advisor) *LoggedRepository {
	return &LoggedRepository{next: next, advisor: advisor}
}

func (r *LoggedRepository) List(ctx context.Context) ([]Employee, error) {
	return intercept.Around(ctx, r.advisor, "List", nil, r.next.List)
}

func (r *LoggedRepository) Get(ctx context.Context, id int64) (Employee, bool, error) {
	var found bool
	e, err := intercept.Around(ctx, r.advisor, "Get", []any{id}, func(ctx context.Context) (Employee, error) {
		e, ok, err := r.next.Get(ctx, id)
		found = ok
		return e, err
	})
	return e, found, err
}

func (r *LoggedRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	return intercept.Around(ctx, r.advisor, "Create", []any{e}, func(ctx context.Context) (Employee, error) {
		return r.next.Create(ctx, e)
	})
}

func (r *LoggedRepository) Update(ctx context.Context, e Employee) (Employee, error) {
	return intercept.Around(ctx, r.advisor, "Update", []any{e}, func(ctx context.Context) (Employee, error) {
		return r.next.Update(ctx, e)
	})
}

func (r *LoggedRepository) Delete(ctx context.Context, id int64) error {
	return intercept.Run(ctx, r.advisor, "Delete", []any{id}, func(ctx context.Context) error {
		return r.next.Delete(ctx, id)
	})
}

// LoggedService applies logging advice to every Operations call.
type LoggedService struct {
	next    Operations
	advisor *intercept.Advisor
}

// NewLoggedService decorates next.
func NewLoggedService(next Operations, advisor *intercept.Advisor) *LoggedService {
	return &LoggedService{next: next, advisor: advisor}
}

func (s *LoggedService) GetAllEmployees(ctx context.Context) ([]Employee, error) {
	return intercept.Around(ctx, s.advisor, "GetAllEmployees", nil, s.next.GetAllEmployees)
}

func (s *LoggedService) GetEmployeeByID(ctx context.Context, id int64) (Employee, bool, error) {
	var found bool
	e, err := intercept.Around(ctx, s.advisor, "GetEmployeeByID", []any{id}, func(ctx context.Context) (Employee, error) {
		e, ok, err := s.next.GetEmployeeByID(ctx, id)
		found = ok
		return e, err
	})
	return e, found, err
}

func (s *LoggedService) CreateEmployee(ctx context.Context, e Employee) (Employee, error) {
	return intercept.Around(ctx, s.advisor, "CreateEmployee", []any{e}, func(ctx context.Context) (Employee, error) {
		return s.next.CreateEmployee(ctx, e)
	})
}

func (s *LoggedService) UpdateEmployee(ctx context.Context, id int64, patch Employee) (Employee, error) {
	return intercept.Around(ctx, s.advisor, "UpdateEmployee", []any{id, patch}, func(ctx context.Context) (Employee, error) {
		return s.next.UpdateEmployee(ctx, id, patch)
	})
}

func (s *LoggedService) DeleteEmployee(ctx context.Context, id int64) (map[string]bool, error) {
	return intercept.Around(ctx, s.advisor, "DeleteEmployee", []any{id}, func(ctx context.Context) (map[string]bool, error) {
		return s.next.DeleteEmployee(ctx, id)
	})
}
