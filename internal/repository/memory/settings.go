package memory

import (
	"context"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
)

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) settings.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.settings == nil {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return *r.store.settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, s settings.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.settings = &s
	return nil
}
