package report

import "github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"

const (
	StatusUnknown = "Unknown"
	StatusActive  = "Active"
)

// DeriveLatestStatus reduces logs ordered oldest first to a single status.
// An open idle session anywhere wins, then the most recent idle session that
// was closed, then the status of the last log.
func DeriveLatestStatus(logs []activity.ActivityLog) string {
	if len(logs) == 0 {
		return StatusUnknown
	}

	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].IsOpen() {
			return activity.StatusIdle
		}
	}

	// No open session remains, so the newest idle session is closed.
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].IsIdleSession() {
			return StatusActive
		}
	}

	if last := logs[len(logs)-1].Status; last != "" {
		return last
	}
	return StatusUnknown
}
