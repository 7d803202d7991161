package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/database"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to TEST_DATABASE_URL, applies the migrations and empties
// every table.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, database.RunMigrations(db))
	_, err = db.Exec(ctx, `TRUNCATE TABLE users, activity_logs, auto_break_logs, settings`)
	require.NoError(t, err)
	return db
}

func at(day, hour, minute int) *time.Time {
	t := time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestActivityRepository_Postgres(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewActivityRepository(db)

	open, err := repo.Create(ctx, activity.ActivityLog{User: "Ali", Status: activity.StatusIdle, IdleStart: at(10, 9, 0)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, activity.ActivityLog{User: "Ali", Status: activity.StatusIdle, IdleStart: at(1, 9, 0), IdleEnd: at(1, 9, 5)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, activity.ActivityLog{User: "Sara", Status: activity.StatusIdle, IdleStart: at(10, 10, 0)})
	require.NoError(t, err)

	rng := daterange.FromDates(*at(9, 0, 0), *at(11, 0, 0))
	logs, err := repo.ListOverlapping(ctx, []string{"Ali"}, rng)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, open.ID, logs[0].ID)

	open.IdleEnd = at(10, 9, 30)
	open.Reason = "Meeting"
	closed, err := repo.Update(ctx, open)
	require.NoError(t, err)
	require.NotNil(t, closed.IdleEnd)
	assert.True(t, closed.IdleEnd.Equal(*at(10, 9, 30)))
	assert.Equal(t, "Meeting", closed.Reason)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)

	require.NoError(t, repo.Delete(ctx, open.ID))
	assert.ErrorIs(t, repo.Delete(ctx, open.ID), activity.ErrActivityNotFound)
}

func TestAutoBreakRepository_Postgres(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewAutoBreakRepository(db)

	_, err := repo.Create(ctx, autobreak.AutoBreak{User: "Ali", BreakStart: at(10, 22, 0)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, autobreak.AutoBreak{User: "Ali", BreakStart: at(2, 22, 0), BreakEnd: at(2, 22, 30)})
	require.NoError(t, err)

	breaks, err := repo.ListOverlapping(ctx, []string{"Ali"}, daterange.FromDates(*at(9, 0, 0), *at(11, 0, 0)))
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.Equal(t, autobreak.StatusAutoBreak, breaks[0].Status)
	assert.True(t, breaks[0].IsOpen())
	assert.Nil(t, breaks[0].DurationMinutes)
}

func TestEmployeeRepository_Postgres(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	ali, err := repo.Create(ctx, employee.Employee{EmpID: "E001", Name: "Ali", ShiftStart: "9:00 PM", ShiftEnd: "6:00 AM"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{EmpID: "E002", Name: "Sara"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{EmpID: "E001", Name: "Duplicate"})
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)

	byEmpID, err := repo.GetByEmpID(ctx, "E001")
	require.NoError(t, err)
	assert.Equal(t, ali.ID, byEmpID.ID)

	empID := "E002"
	list, err := repo.List(ctx, employee.EmployeeFilter{EmpID: &empID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sara", list[0].Name)

	ali.Department = "Support"
	updated, err := repo.Update(ctx, ali)
	require.NoError(t, err)
	assert.Equal(t, "Support", updated.Department)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, repo.Delete(ctx, ali.ID))
	_, err = repo.GetByID(ctx, ali.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSettingsRepository_Postgres(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := postgresql.NewSettingsRepository(db)

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)

	require.NoError(t, repo.Save(ctx, settings.Settings{GeneralIdleLimit: 45, NamazLimit: 30}))
	require.NoError(t, repo.Save(ctx, settings.Settings{GeneralIdleLimit: 40, NamazLimit: 35}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, got.GeneralIdleLimit)
	assert.Equal(t, 35, got.NamazLimit)
	assert.NotNil(t, got.CreatedAt)
}
