package activity

import (
	"context"

	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
)

// ActivityRepository is the activity_logs collection.
type ActivityRepository interface {
	// GetByID returns ErrActivityNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (ActivityLog, error)

	// Update persists every mutable field of log, including a cleared IdleEnd.
	Update(ctx context.Context, log ActivityLog) (ActivityLog, error)

	// Delete returns ErrActivityNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error

	// ListOverlapping returns the logs of the named users whose idle interval
	// overlaps r, ordered by (user, idle_start).
	ListOverlapping(ctx context.Context, users []string, r daterange.Range) ([]ActivityLog, error)

	Create(ctx context.Context, log ActivityLog) (ActivityLog, error)
}
