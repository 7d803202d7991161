package employee

import "context"

type EmployeeFilter struct {
	// EmpID restricts the result to a single employee when non-nil.
	EmpID *string
}

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)

	// Delete returns ErrEmployeeNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
