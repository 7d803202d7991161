package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Settings
	err := q.QueryRow(ctx, `SELECT general_idle_limit, namaz_limit, created_at FROM settings WHERE id = 1`).Scan(
		&s.GeneralIdleLimit,
		&s.NamazLimit,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("select settings: %w", err)
	}
	return s, nil
}

// Save implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Save(ctx context.Context, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)
	if s.CreatedAt == nil {
		now := time.Now().UTC()
		s.CreatedAt = &now
	}

	query := `
		INSERT INTO settings (id, general_idle_limit, namaz_limit, created_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET general_idle_limit = EXCLUDED.general_idle_limit, namaz_limit = EXCLUDED.namaz_limit`

	if _, err := q.Exec(ctx, query, s.GeneralIdleLimit, s.NamazLimit, s.CreatedAt); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
