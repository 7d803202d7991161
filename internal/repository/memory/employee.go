package memory

import (
	"context"
	"slices"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) find(match func(employee.Employee) bool) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := slices.IndexFunc(r.store.employees, match)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.store.employees[i], nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.ID == id })
}

func (r *employeeRepository) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.EmpID == empID })
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []employee.Employee
	for _, e := range r.store.employees {
		if filter.EmpID != nil && e.EmpID != *filter.EmpID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if e.EmpID != "" && slices.ContainsFunc(r.store.employees, func(x employee.Employee) bool { return x.EmpID == e.EmpID }) {
		return employee.Employee{}, employee.ErrEmpIDExists
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt == nil {
		now := time.Now().UTC()
		e.CreatedAt = &now
	}
	r.store.employees = append(r.store.employees, e)
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := slices.IndexFunc(r.store.employees, func(x employee.Employee) bool { return x.ID == e.ID })
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	r.store.employees[i] = e
	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := slices.IndexFunc(r.store.employees, func(x employee.Employee) bool { return x.ID == id })
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	r.store.employees = slices.Delete(r.store.employees, i, i+1)
	return nil
}
