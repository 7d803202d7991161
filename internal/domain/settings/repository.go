package settings

import "context"

type SettingsRepository interface {
	// Get returns ErrSettingsNotFound when no settings document exists.
	Get(ctx context.Context) (Settings, error)

	// Save replaces the singleton document.
	Save(ctx context.Context, s Settings) error
}
