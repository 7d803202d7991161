package activity

import (
	"slices"

	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/optional"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/timeutil"
)

// UpdateActivityRequest carries a partial update. Keys that are absent, or
// hold a value of the wrong JSON type, leave the stored field untouched.
type UpdateActivityRequest struct {
	ID        string                 `json:"-"`
	Reason    optional.Field[string] `json:"reason"`
	Category  optional.Field[string] `json:"category"`
	Status    optional.Field[string] `json:"status"`
	IdleStart optional.Field[string] `json:"idle_start"`
	IdleEnd   optional.Field[string] `json:"idle_end"`
}

// IgnoredFields names the keys that were sent with a value of the wrong type.
func (r UpdateActivityRequest) IgnoredFields() []string {
	var fields []string
	for name, invalid := range map[string]bool{
		"reason":     r.Reason.Invalid(),
		"category":   r.Category.Invalid(),
		"status":     r.Status.Invalid(),
		"idle_start": r.IdleStart.Invalid(),
		"idle_end":   r.IdleEnd.Invalid(),
	} {
		if invalid {
			fields = append(fields, name)
		}
	}
	slices.Sort(fields)
	return fields
}

type ActivityLogResponse struct {
	ID        string  `json:"_id"`
	User      string  `json:"user"`
	Status    string  `json:"status,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Category  string  `json:"category,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
	IdleStart *string `json:"idle_start,omitempty"`
	IdleEnd   *string `json:"idle_end,omitempty"`
}

func NewActivityLogResponse(log ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ID:        log.ID,
		User:      log.User,
		Status:    log.Status,
		Reason:    log.Reason,
		Category:  log.Category,
		Timestamp: timeutil.ISOPtr(log.Timestamp),
		IdleStart: timeutil.ISOPtr(log.IdleStart),
		IdleEnd:   timeutil.ISOPtr(log.IdleEnd),
	}
}
