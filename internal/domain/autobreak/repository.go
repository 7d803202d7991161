package autobreak

import (
	"context"

	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
)

// AutoBreakRepository is the auto_break_logs collection. Breaks are written by
// the agent; this service only reads them.
type AutoBreakRepository interface {
	// ListOverlapping returns the breaks of the named users overlapping r,
	// ordered by (user, break_start).
	ListOverlapping(ctx context.Context, users []string, r daterange.Range) ([]AutoBreak, error)

	// Create is used by development seeding.
	Create(ctx context.Context, b AutoBreak) (AutoBreak, error)
}
