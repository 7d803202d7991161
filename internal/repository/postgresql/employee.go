package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, emp_id, name, department, shift_start, shift_end, created_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmpID,
		&e.Name,
		&e.Department,
		&e.ShiftStart,
		&e.ShiftEnd,
		&e.CreatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE ` + where + ` LIMIT 1`

	e, err := scanEmployee(q.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("select employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.getOne(ctx, "id = $1", id)
}

// GetByEmpID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return r.getOne(ctx, "emp_id = $1", empID)
}

// buildEmployeeListQuery returns the list query for filter and its arguments.
func buildEmployeeListQuery(filter employee.EmployeeFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.EmpID != nil {
		args = append(args, *filter.EmpID)
		conditions = append(conditions, fmt.Sprintf("emp_id = $%d", len(args)))
	}

	query := `SELECT ` + employeeColumns + ` FROM users`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at NULLS FIRST, id`
	return query, args
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query, args := buildEmployeeListQuery(filter)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Create implements employee.EmployeeRepository. The emp_id uniqueness check
// and the insert run in one transaction.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == nil {
		now := time.Now().UTC()
		e.CreatedAt = &now
	}

	var created employee.Employee
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if e.EmpID != "" {
			var exists bool
			if err := q.QueryRow(txCtx, `SELECT EXISTS(SELECT 1 FROM users WHERE emp_id = $1)`, e.EmpID).Scan(&exists); err != nil {
				return fmt.Errorf("check emp_id: %w", err)
			}
			if exists {
				return employee.ErrEmpIDExists
			}
		}

		query := `
			INSERT INTO users (` + employeeColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING ` + employeeColumns

		var err error
		created, err = scanEmployee(q.QueryRow(txCtx, query,
			e.ID, e.EmpID, e.Name, e.Department, e.ShiftStart, e.ShiftEnd, e.CreatedAt,
		))
		if err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if _, err := uuid.Parse(e.ID); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, department = $2, shift_start = $3, shift_end = $4
		WHERE id = $5
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, e.Name, e.Department, e.ShiftStart, e.ShiftEnd, e.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
