package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

var employeeColumns = []string{"id", "first_name", "last_name", "email"}

func newMockRepository(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock), mock
}

func TestPostgresRepositoryList(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesSQL)).
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow(int64(1), "jhon", "", "").
			AddRow(int64(2), "Ana", "Lopez", "ana@example.com"))

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, Employee{ID: 2, FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"}, employees[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryGet(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeSQL)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(employeeColumns).AddRow(int64(1), "jhon", "", ""))
	mock.ExpectQuery(regexp.QuoteMeta(getEmployeeSQL)).
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	e, ok, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jhon", e.FirstName)

	_, ok, err = repo.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeSQL)).
		WithArgs("Ana", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	e, err := repo.Create(context.Background(), Employee{FirstName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryCreateTranslatesConstraintViolations(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeSQL)).
		WithArgs("", "", "").
		WillReturnError(&pgconn.PgError{Code: checkViolationCode, Message: "violates check constraint"})

	_, err := repo.Create(context.Background(), Employee{})
	assert.ErrorIs(t, err, httpx.ErrValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(updateEmployeeSQL)).
		WithArgs("Ana", "Diaz", "ana@example.com", int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(updateEmployeeSQL)).
		WithArgs("Ghost", "", "", int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	e, err := repo.Update(context.Background(), Employee{ID: 3, FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.ID)

	_, err = repo.Update(context.Background(), Employee{ID: 9, FirstName: "Ghost"})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeSQL)).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeSQL)).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), httpx.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslatePgErrorPassesOtherErrorsThrough(t *testing.T) {
	other := errors.New("conn reset")
	err := translatePgError("create", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, httpx.ErrValidation)
}
