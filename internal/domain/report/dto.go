package report

import (
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
)

// ReportRequest selects a calendar range of YYYY-MM-DD dates. Missing bounds
// default to the last seven days. Caller scopes an employee to their own record.
type ReportRequest struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Caller user.Principal `json:"-"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if r.From != "" && !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.To)
	if r.To != "" && !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionKind string

const (
	SessionIdle      SessionKind = "Idle"
	SessionAutoBreak SessionKind = "AutoBreak"
)

// Session is one entry of an employee timeline, derived from an idle log or
// an auto-break. Times are rendered as ISO strings in UTC, and as wall clock
// HH:mm:ss in the shift zone.
type Session struct {
	ID             string      `json:"_id"`
	Kind           SessionKind `json:"kind"`
	IdleStart      *string     `json:"idle_start"`
	IdleEnd        *string     `json:"idle_end"`
	StartTimeLocal string      `json:"start_time_local"`
	EndTimeLocal   string      `json:"end_time_local"`
	Reason         string      `json:"reason"`
	Category       string      `json:"category"`
	Duration       int         `json:"duration"`
	ShiftDate      string      `json:"shiftDate"`
	ShiftLabel     string      `json:"shiftLabel"`
}

type EmployeeReport struct {
	ID                  string    `json:"id"`
	EmpID               string    `json:"emp_id"`
	Name                string    `json:"name"`
	Department          string    `json:"department"`
	ShiftStart          string    `json:"shift_start"`
	ShiftEnd            string    `json:"shift_end"`
	CreatedAt           *string   `json:"created_at"`
	LatestStatus        string    `json:"latest_status"`
	HasOngoingIdle      bool      `json:"has_ongoing_idle"`
	HasOngoingAutoBreak bool      `json:"has_ongoing_autobreak"`
	IsInShiftNow        bool      `json:"is_in_shift_now"`
	IdleSessions        []Session `json:"idle_sessions"`
}

// RangeInfo echoes the requested bounds and the clamped window actually used.
type RangeInfo struct {
	From          string `json:"from"`
	To            string `json:"to"`
	EffectiveFrom string `json:"effective_from"`
	EffectiveTo   string `json:"effective_to"`
}

type Report struct {
	Employees []EmployeeReport          `json:"employees"`
	Settings  settings.SettingsResponse `json:"settings"`
	Range     RangeInfo                 `json:"range"`
}

// Export is a rendered report file.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
