package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
)

type activityRepository struct {
	store *Store
}

func NewActivityRepository(store *Store) activity.ActivityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) index(id string) int {
	return slices.IndexFunc(r.store.activities, func(l activity.ActivityLog) bool { return l.ID == id })
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (activity.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	return r.store.activities[i], nil
}

func (r *activityRepository) Update(ctx context.Context, log activity.ActivityLog) (activity.ActivityLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.index(log.ID)
	if i < 0 {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	r.store.activities[i] = log
	return log, nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return activity.ErrActivityNotFound
	}
	r.store.activities = slices.Delete(r.store.activities, i, i+1)
	return nil
}

func (r *activityRepository) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]activity.ActivityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []activity.ActivityLog
	for _, l := range r.store.activities {
		if l.IdleStart == nil || !slices.Contains(users, l.User) {
			continue
		}
		if rng.Overlaps(*l.IdleStart, l.IdleEnd) {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(a, b activity.ActivityLog) int {
		if c := strings.Compare(a.User, b.User); c != 0 {
			return c
		}
		return a.IdleStart.Compare(*b.IdleStart)
	})
	return out, nil
}

func (r *activityRepository) Create(ctx context.Context, log activity.ActivityLog) (activity.ActivityLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if log.ID == "" {
		log.ID = newID()
	}
	r.store.activities = append(r.store.activities, log)
	return log, nil
}
