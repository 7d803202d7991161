package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unreachableSettings struct{}

func (unreachableSettings) Get(ctx context.Context) (settings.Settings, error) {
	return settings.Settings{}, errors.New("no reachable servers")
}

func (unreachableSettings) Save(ctx context.Context, s settings.Settings) error {
	return errors.New("no reachable servers")
}

func TestSettingsService_PublicConfig(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepository(memory.NewStore())
	svc := NewSettingsService(repo)

	cfg := svc.PublicConfig(ctx)
	assert.Equal(t, 60, cfg.GeneralIdleLimit)
	assert.Equal(t, 50, cfg.NamazLimit)
	assert.Equal(t, "#ef4444", cfg.CategoryColors["AutoBreak"])
	assert.Len(t, cfg.CategoryColors, 4)

	require.NoError(t, repo.Save(ctx, settings.Settings{GeneralIdleLimit: 25, NamazLimit: 15}))
	cfg = svc.PublicConfig(ctx)
	assert.Equal(t, 25, cfg.GeneralIdleLimit)
	assert.Equal(t, 15, cfg.NamazLimit)
}

func TestSettingsService_StorageFailure(t *testing.T) {
	svc := NewSettingsService(unreachableSettings{})

	_, err := svc.Current(context.Background())
	assert.Error(t, err)

	cfg := svc.PublicConfig(context.Background())
	assert.Equal(t, settings.DefaultGeneralIdleLimit, cfg.GeneralIdleLimit)
	assert.Equal(t, settings.DefaultNamazLimit, cfg.NamazLimit)
}
