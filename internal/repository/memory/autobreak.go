package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
)

type autoBreakRepository struct {
	store *Store
}

func NewAutoBreakRepository(store *Store) autobreak.AutoBreakRepository {
	return &autoBreakRepository{store: store}
}

func (r *autoBreakRepository) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]autobreak.AutoBreak, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []autobreak.AutoBreak
	for _, b := range r.store.breaks {
		if b.BreakStart == nil || !slices.Contains(users, b.User) {
			continue
		}
		if rng.Overlaps(*b.BreakStart, b.BreakEnd) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b autobreak.AutoBreak) int {
		if c := strings.Compare(a.User, b.User); c != 0 {
			return c
		}
		return a.BreakStart.Compare(*b.BreakStart)
	})
	return out, nil
}

func (r *autoBreakRepository) Create(ctx context.Context, b autobreak.AutoBreak) (autobreak.AutoBreak, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if b.ID == "" {
		b.ID = newID()
	}
	if b.Status == "" {
		b.Status = autobreak.StatusAutoBreak
	}
	r.store.breaks = append(r.store.breaks, b)
	return b, nil
}
