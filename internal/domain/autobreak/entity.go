package autobreak

import "time"

const (
	StatusAutoBreak = "AutoBreak"

	// Reason and Category are fixed for every system generated break.
	Reason   = "System Power Off / Startup"
	Category = "AutoBreak"
)

// AutoBreak is a break recorded by the desktop agent when the machine was
// powered off or restarted. ShiftDate, ShiftLabel and DurationMinutes are
// optional values cached by the agent at write time.
type AutoBreak struct {
	ID              string
	User            string
	Status          string
	BreakStart      *time.Time
	BreakEnd        *time.Time
	DurationMinutes *int
	ShiftDate       string
	ShiftLabel      string
	Timestamp       *time.Time
}

// IsOpen reports whether the break started and has not ended.
func (b AutoBreak) IsOpen() bool {
	return b.BreakStart != nil && b.BreakEnd == nil
}
