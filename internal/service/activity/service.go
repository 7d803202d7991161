package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
)

type ActivityServiceImpl struct {
	activity.ActivityRepository
	now func() time.Time
}

func NewActivityService(activityRepository activity.ActivityRepository) activity.ActivityService {
	return &ActivityServiceImpl{
		ActivityRepository: activityRepository,
		now:                time.Now,
	}
}

// UpdateActivity implements activity.ActivityService.
func (s *ActivityServiceImpl) UpdateActivity(ctx context.Context, req activity.UpdateActivityRequest) (activity.ActivityLogResponse, error) {
	log, err := s.ActivityRepository.GetByID(ctx, req.ID)
	if err != nil {
		return activity.ActivityLogResponse{}, err
	}

	if ignored := req.IgnoredFields(); len(ignored) > 0 {
		slog.Debug("ignoring fields with wrong JSON type", "id", req.ID, "fields", ignored)
	}

	if v, ok := req.Reason.Get(); ok {
		log.Reason = v
	}
	if v, ok := req.Category.Get(); ok {
		log.Category = v
	}
	if v, ok := req.Status.Get(); ok {
		log.Status = v
	}

	// An empty idle_start is ignored; the start of a session is never cleared.
	if v, ok := req.IdleStart.Get(); ok && strings.TrimSpace(v) != "" {
		start, valid := validator.ParseTimestamp(v)
		if !valid {
			return activity.ActivityLogResponse{}, activity.ErrInvalidIdleStart
		}
		log.IdleStart = &start
	}

	if req.IdleEnd.IsClear() {
		log.IdleEnd = nil
	} else if v, ok := req.IdleEnd.Get(); ok {
		if strings.TrimSpace(v) == "" {
			log.IdleEnd = nil
		} else {
			end, valid := validator.ParseTimestamp(v)
			if !valid {
				return activity.ActivityLogResponse{}, activity.ErrInvalidIdleEnd
			}
			log.IdleEnd = &end
		}
	}

	updated, err := s.ActivityRepository.Update(ctx, log)
	if err != nil {
		return activity.ActivityLogResponse{}, fmt.Errorf("failed to update activity log: %w", err)
	}

	return activity.NewActivityLogResponse(updated), nil
}

// EndActivity implements activity.ActivityService.
func (s *ActivityServiceImpl) EndActivity(ctx context.Context, id string) (activity.ActivityLogResponse, error) {
	log, err := s.ActivityRepository.GetByID(ctx, id)
	if err != nil {
		return activity.ActivityLogResponse{}, err
	}

	if log.IdleStart == nil {
		return activity.ActivityLogResponse{}, activity.ErrNoIdleStart
	}
	if log.IdleEnd != nil {
		return activity.ActivityLogResponse{}, activity.ErrAlreadyClosed
	}

	end := s.now().UTC()
	log.IdleEnd = &end

	updated, err := s.ActivityRepository.Update(ctx, log)
	if err != nil {
		return activity.ActivityLogResponse{}, fmt.Errorf("failed to end activity log: %w", err)
	}

	return activity.NewActivityLogResponse(updated), nil
}

// DeleteActivity implements activity.ActivityService.
func (s *ActivityServiceImpl) DeleteActivity(ctx context.Context, id string) error {
	return s.ActivityRepository.Delete(ctx, id)
}
