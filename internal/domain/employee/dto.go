package employee

import (
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/optional"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/timeutil"
)

// UpdateEmployeeRequest applies only the string-typed fields that are present.
// Identifier is either the internal id or the emp_id.
type UpdateEmployeeRequest struct {
	Identifier string                 `json:"-"`
	Name       optional.Field[string] `json:"name"`
	Department optional.Field[string] `json:"department"`
	ShiftStart optional.Field[string] `json:"shift_start"`
	ShiftEnd   optional.Field[string] `json:"shift_end"`
}

type EmployeeResponse struct {
	ID         string  `json:"_id"`
	EmpID      string  `json:"emp_id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	ShiftStart string  `json:"shift_start"`
	ShiftEnd   string  `json:"shift_end"`
	CreatedAt  *string `json:"created_at,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmpID:      e.EmpID,
		Name:       e.Name,
		Department: e.Department,
		ShiftStart: e.ShiftStart,
		ShiftEnd:   e.ShiftEnd,
		CreatedAt:  timeutil.ISOPtr(e.CreatedAt),
	}
}
