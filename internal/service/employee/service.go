package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// resolve looks the identifier up as an internal id, then as an emp_id.
// Only a miss falls through; storage errors are returned as they are.
func (s *EmployeeServiceImpl) resolve(ctx context.Context, identifier string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, identifier)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	emp, err = s.employeeRepo.GetByEmpID(ctx, identifier)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by emp_id: %w", err)
	}
	return emp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.resolve(ctx, req.Identifier)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if v, ok := req.Name.Get(); ok {
		emp.Name = v
	}
	if v, ok := req.Department.Get(); ok {
		emp.Department = v
	}
	if v, ok := req.ShiftStart.Get(); ok {
		emp.ShiftStart = v
	}
	if v, ok := req.ShiftEnd.Get(); ok {
		emp.ShiftEnd = v
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	slog.Info("employee updated", "id", updated.ID, "emp_id", updated.EmpID)
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, identifier string) error {
	emp, err := s.resolve(ctx, identifier)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, emp.ID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee deleted", "id", emp.ID, "emp_id", emp.EmpID)
	return nil
}
