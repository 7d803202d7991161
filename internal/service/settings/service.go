package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
	}
}

// Current implements settings.SettingsService.
func (s *SettingsServiceImpl) Current(ctx context.Context) (settings.Settings, error) {
	st, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return st, nil
}

// PublicConfig implements settings.SettingsService.
func (s *SettingsServiceImpl) PublicConfig(ctx context.Context) settings.PublicConfigResponse {
	st, err := s.Current(ctx)
	if err != nil {
		slog.Warn("serving default idle limits", "error", err)
		st = settings.Default()
	}

	return settings.PublicConfigResponse{
		GeneralIdleLimit: st.GeneralIdleLimit,
		NamazLimit:       st.NamazLimit,
		CategoryColors:   maps.Clone(settings.CategoryColors),
	}
}
