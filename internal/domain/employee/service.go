package employee

import "context"

type EmployeeService interface {
	// UpdateEmployee resolves the identifier as an internal id first, then
	// as an emp_id.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee resolves the identifier the same way as UpdateEmployee.
	DeleteEmployee(ctx context.Context, identifier string) error
}
