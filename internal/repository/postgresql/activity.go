package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const activityColumns = `id, user_name, status, reason, category, recorded_at, idle_start, idle_end`

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

func scanActivity(row pgx.Row) (activity.ActivityLog, error) {
	var l activity.ActivityLog
	err := row.Scan(
		&l.ID,
		&l.User,
		&l.Status,
		&l.Reason,
		&l.Category,
		&l.Timestamp,
		&l.IdleStart,
		&l.IdleEnd,
	)
	return l, err
}

// GetByID implements activity.ActivityRepository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.ActivityLog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + activityColumns + ` FROM activity_logs WHERE id = $1`

	l, err := scanActivity(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("select activity log: %w", err)
	}
	return l, nil
}

// Update implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Update(ctx context.Context, l activity.ActivityLog) (activity.ActivityLog, error) {
	if _, err := uuid.Parse(l.ID); err != nil {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE activity_logs
		SET status = $1, reason = $2, category = $3, recorded_at = $4, idle_start = $5, idle_end = $6
		WHERE id = $7
		RETURNING ` + activityColumns

	updated, err := scanActivity(q.QueryRow(ctx, query,
		l.Status, l.Reason, l.Category, l.Timestamp, l.IdleStart, l.IdleEnd, l.ID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return activity.ActivityLog{}, activity.ErrActivityNotFound
	}
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("update activity log: %w", err)
	}
	return updated, nil
}

// Delete implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return activity.ErrActivityNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}
	return nil
}

// ListOverlapping implements activity.ActivityRepository.
func (r *activityRepositoryImpl) ListOverlapping(ctx context.Context, users []string, rng daterange.Range) ([]activity.ActivityLog, error) {
	if len(users) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + activityColumns + `
		FROM activity_logs
		WHERE user_name = ANY($1)
		  AND idle_start <= $2
		  AND (idle_end IS NULL OR idle_end >= $3)
		ORDER BY user_name, idle_start`

	rows, err := q.Query(ctx, query, users, rng.To, rng.From)
	if err != nil {
		return nil, fmt.Errorf("select activity logs: %w", err)
	}
	defer rows.Close()

	var logs []activity.ActivityLog
	for rows.Next() {
		l, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, l activity.ActivityLog) (activity.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	query := `
		INSERT INTO activity_logs (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + activityColumns

	created, err := scanActivity(q.QueryRow(ctx, query,
		l.ID, l.User, l.Status, l.Reason, l.Category, l.Timestamp, l.IdleStart, l.IdleEnd,
	))
	if err != nil {
		return activity.ActivityLog{}, fmt.Errorf("insert activity log: %w", err)
	}
	return created, nil
}
