package employee

import "time"

// Employee is a monitored person. Activity records reference the employee by
// Name, not by ID. ShiftStart and ShiftEnd are free-form time-of-day strings
// such as "9:00 PM" or "21:00".
type Employee struct {
	ID         string
	EmpID      string
	Name       string
	Department string
	ShiftStart string
	ShiftEnd   string
	CreatedAt  *time.Time
}
