package activity

import "time"

const StatusIdle = "Idle"

// ActivityLog is one status report from the desktop agent. It is linked to its
// employee by name, not by id.
type ActivityLog struct {
	ID        string
	User      string
	Status    string
	Reason    string
	Category  string
	Timestamp *time.Time
	IdleStart *time.Time
	IdleEnd   *time.Time
}

// IsIdleSession reports whether the log describes an idle interval.
func (l ActivityLog) IsIdleSession() bool {
	return l.Status == StatusIdle && l.IdleStart != nil
}

// IsOpen reports whether the log is an idle session that has not ended yet.
func (l ActivityLog) IsOpen() bool {
	return l.IsIdleSession() && l.IdleEnd == nil
}
