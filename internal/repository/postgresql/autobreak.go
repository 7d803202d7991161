package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const autoBreakColumns = `id, user_name, status, break_start, break_end, duration_minutes, shift_date, shift_label, recorded_at`

type autoBreakRepositoryImpl struct {
	db *database.DB
}

func NewAutoBreakRepository(db *database.DB) autobreak.AutoBreakRepository {
	return &autoBreakRepositoryImpl{db: db}
}

func scanAutoBreak(row pgx.Row) (autobreak.AutoBreak, error) {
	var b autobreak.AutoBreak
	err := row.Scan(
		&b.ID,
		&b.User,
		&b.Status,
		&b.BreakStart,
		&b.BreakEnd,
		&b.DurationMinutes,
		&b.ShiftDate,
		&b.ShiftLabel,
		&b.Timestamp,
	)
	return b, err
}

// ListOverlapping implements autobreak.AutoBreakRepository.
func (r *autoBreakRepositoryImpl) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]autobreak.AutoBreak, error) {
	if len(users) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + autoBreakColumns + `
		FROM auto_break_logs
		WHERE user_name = ANY($1)
		  AND break_start <= $2
		  AND (break_end IS NULL OR break_end >= $3)
		ORDER BY user_name, break_start`

	rows, err := q.Query(ctx, query, users, rng.To, rng.From)
	if err != nil {
		return nil, fmt.Errorf("select auto breaks: %w", err)
	}
	defer rows.Close()

	var breaks []autobreak.AutoBreak
	for rows.Next() {
		b, err := scanAutoBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auto break: %w", err)
		}
		breaks = append(breaks, b)
	}
	return breaks, rows.Err()
}

// Create implements autobreak.AutoBreakRepository.
func (r *autoBreakRepositoryImpl) Create(ctx context.Context, b autobreak.AutoBreak) (autobreak.AutoBreak, error) {
	q := GetQuerier(ctx, r.db)
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = autobreak.StatusAutoBreak
	}
	if b.Timestamp == nil {
		now := time.Now().UTC()
		b.Timestamp = &now
	}

	query := `
		INSERT INTO auto_break_logs (` + autoBreakColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + autoBreakColumns

	created, err := scanAutoBreak(q.QueryRow(ctx, query,
		b.ID, b.User, b.Status, b.BreakStart, b.BreakEnd, b.DurationMinutes, b.ShiftDate, b.ShiftLabel, b.Timestamp,
	))
	if err != nil {
		return autobreak.AutoBreak{}, fmt.Errorf("insert auto break: %w", err)
	}
	return created, nil
}
