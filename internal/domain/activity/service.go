package activity

import "context"

// ActivityService defines admin corrections on activity logs
type ActivityService interface {
	// UpdateActivity applies the fields present in req
	UpdateActivity(ctx context.Context, req UpdateActivityRequest) (ActivityLogResponse, error)

	// EndActivity closes an open idle session at the current instant
	EndActivity(ctx context.Context, id string) (ActivityLogResponse, error)

	DeleteActivity(ctx context.Context, id string) error
}
