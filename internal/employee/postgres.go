package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/db"
	"github.com/dkhailiaAchref/spring-aop-authorization-logging/internal/platform/httpx"
)

const (
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
)

const (
	listEmployeesSQL  = `SELECT id, first_name, last_name, email FROM employees ORDER BY id`
	getEmployeeSQL    = `SELECT id, first_name, last_name, email FROM employees WHERE id = $1`
	insertEmployeeSQL = `INSERT INTO employees (first_name, last_name, email) VALUES ($1, $2, $3) RETURNING id`
	updateEmployeeSQL = `UPDATE employees SET first_name = $1, last_name = $2, email = $3 WHERE id = $4`
	deleteEmployeeSQL = `DELETE FROM employees WHERE id = $1`
)

// PostgresRepository stores employees in the employees table.
type PostgresRepository struct {
	db db.Querier
}

// NewPostgresRepository wraps a pgx pool (or anything shaped like one).
func NewPostgresRepository(q db.Querier) *PostgresRepository {
	return &PostgresRepository{db: q}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx, listEmployeesSQL)
	if err != nil {
		return nil, fmt.Errorf("employee: list: %w", err)
	}
	defer rows.Close()

	employees := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			return nil, fmt.Errorf("employee: scan: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("employee: list: %w", err)
	}
	return employees, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (Employee, bool, error) {
	var e Employee
	err := r.db.QueryRow(ctx, getEmployeeSQL, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, false, nil
	}
	if err != nil {
		return Employee{}, false, fmt.Errorf("employee: get %d: %w", id, err)
	}
	return e, true, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	if err := r.db.QueryRow(ctx, insertEmployeeSQL, e.FirstName, e.LastName, e.Email).Scan(&e.ID); err != nil {
		return Employee{}, translatePgError("create", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e Employee) (Employee, error) {
	tag, err := r.db.Exec(ctx, updateEmployeeSQL, e.FirstName, e.LastName, e.Email, e.ID)
	if err != nil {
		return Employee{}, translatePgError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return Employee{}, &NotFoundError{ID: e.ID}
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteEmployeeSQL, id)
	if err != nil {
		return fmt.Errorf("employee: delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

func translatePgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case notNullViolationCode, checkViolationCode:
			return fmt.Errorf("employee: %s: %s: %w", op, pgErr.Message, httpx.ErrValidation)
		}
	}
	return fmt.Errorf("employee: %s: %w", op, err)
}
