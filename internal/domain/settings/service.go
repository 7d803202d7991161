package settings

import "context"

type SettingsService interface {
	// Current returns the stored settings, or the defaults when none exist.
	Current(ctx context.Context) (Settings, error)

	// PublicConfig never fails; storage errors fall back to the defaults.
	PublicConfig(ctx context.Context) PublicConfigResponse
}
