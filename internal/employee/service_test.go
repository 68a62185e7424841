package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

// failingRepository wraps a MemoryRepository and injects errors per operation.
type failingRepository struct {
	*MemoryRepository
	listErr   error
	getErr    error
	createErr error
	deleteErr error
}

func (f *failingRepository) List(ctx context.Context) ([]Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.MemoryRepository.List(ctx)
}

func (f *failingRepository) Get(ctx context.Context, id int64) (Employee, bool, error) {
	if f.getErr != nil {
		return Employee{}, false, f.getErr
	}
	return f.MemoryRepository.Get(ctx, id)
}

func (f *failingRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	if f.createErr != nil {
		return Employee{}, f.createErr
	}
	return f.MemoryRepository.Create(ctx, e)
}

func (f *failingRepository) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryRepository.Delete(ctx, id)
}

func TestServiceCreateThenGetRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())

	input := Employee{ID: 500, FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"}
	created, err := svc.CreateEmployee(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "client supplied ids are ignored")

	got, ok, err := svc.GetEmployeeByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	input.ID = created.ID
	assert.Equal(t, input, got)
}

func TestServiceGetAbsentIsNotAnError(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, ok, err := svc.GetEmployeeByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceGetAllKeepsStoreOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())
	for _, name := range []string{"c", "a", "b"} {
		_, err := svc.CreateEmployee(ctx, Employee{FirstName: name})
		require.NoError(t, err)
	}

	all, err := svc.GetAllEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].FirstName, all[1].FirstName, all[2].FirstName})
}

func TestServiceUpdateOverwritesMutableFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())
	created, err := svc.CreateEmployee(ctx, Employee{FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"})
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, created.ID, Employee{ID: 77, FirstName: "Anna"})
	require.NoError(t, err)
	assert.Equal(t, Employee{ID: created.ID, FirstName: "Anna"}, updated, "every mutable field is overwritten, id is kept")

	got, _, err := svc.GetEmployeeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestServiceUpdateAbsentLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	svc := NewService(repo)
	_, err := svc.CreateEmployee(ctx, Employee{FirstName: "Ana"})
	require.NoError(t, err)
	before, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(ctx, 9, Employee{FirstName: "Ghost"})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Employee not found for this id :: 9", err.Error())
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository())
	created, err := svc.CreateEmployee(ctx, Employee{FirstName: "Ana"})
	require.NoError(t, err)

	res, err := svc.DeleteEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"deleted": true}, res)

	_, ok, err := svc.GetEmployeeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.DeleteEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServicePropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("store down")

	svc := NewService(&failingRepository{MemoryRepository: NewMemoryRepository(), getErr: boom})
	_, err := svc.UpdateEmployee(ctx, 1, Employee{FirstName: "x"})
	assert.ErrorIs(t, err, boom)
	_, err = svc.DeleteEmployee(ctx, 1)
	assert.ErrorIs(t, err, boom)

	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), deleteErr: boom}
	_, err = repo.MemoryRepository.Create(ctx, Employee{FirstName: "Ana"})
	require.NoError(t, err)
	_, err = NewService(repo).DeleteEmployee(ctx, 1)
	assert.ErrorIs(t, err, boom)
}
