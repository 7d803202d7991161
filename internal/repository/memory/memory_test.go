package memory

import (
	"context"
	"testing"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day, hour int) *time.Time {
	t := time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestActivityRepository_ListOverlapping(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(NewStore())

	seed := []activity.ActivityLog{
		{User: "bob", Status: activity.StatusIdle, IdleStart: ts(11, 9)},
		{User: "ali", Status: activity.StatusIdle, IdleStart: ts(11, 9), IdleEnd: ts(11, 10)},
		{User: "ali", Status: activity.StatusIdle, IdleStart: ts(10, 9), IdleEnd: ts(10, 10)},
		{User: "ali", Status: activity.StatusIdle, IdleStart: ts(1, 9), IdleEnd: ts(1, 10)},
		{User: "ali", Status: "Active"},
		{User: "eve", Status: activity.StatusIdle, IdleStart: ts(11, 9)},
	}
	for _, l := range seed {
		_, err := repo.Create(ctx, l)
		require.NoError(t, err)
	}

	rng := daterange.FromDates(*ts(10, 0), *ts(12, 0))
	got, err := repo.ListOverlapping(ctx, []string{"ali", "bob"}, rng)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "ali", got[0].User)
	assert.Equal(t, *ts(10, 9), *got[0].IdleStart)
	assert.Equal(t, "ali", got[1].User)
	assert.Equal(t, "bob", got[2].User)
}

func TestActivityRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(NewStore())

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), activity.ErrActivityNotFound)
}

func TestEmployeeRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	_, err := repo.Create(ctx, employee.Employee{EmpID: "E1", Name: "Ali"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{EmpID: "E2", Name: "Bob"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{EmpID: "E1", Name: "Dup"})
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)

	all, err := repo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	empID := "E2"
	one, err := repo.List(ctx, employee.EmployeeFilter{EmpID: &empID})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Bob", one[0].Name)
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(NewStore())

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)

	require.NoError(t, repo.Save(ctx, settings.Settings{GeneralIdleLimit: 45, NamazLimit: 30}))
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, got.GeneralIdleLimit)
}
