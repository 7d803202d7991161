package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededData counts what Seed inserted
type SeededData struct {
	EmployeeIDs map[string]string // emp_id -> id
	IdleLogs    int
	AutoBreaks  int
}

func NewSeededData() *SeededData {
	return &SeededData{EmployeeIDs: make(map[string]string)}
}

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

// GetDefaultEmployees returns one employee per shift pattern: a night shift
// crossing midnight, a day shift and an evening shift.
func GetDefaultEmployees() []employee.Employee {
	return []employee.Employee{
		{EmpID: "E1001", Name: "Ali Raza", Department: "Support", ShiftStart: "9:00 PM", ShiftEnd: "6:00 AM"},
		{EmpID: "E1002", Name: "Sara Khan", Department: "Sales", ShiftStart: "09:00", ShiftEnd: "18:00"},
		{EmpID: "E1003", Name: "Usman Tariq", Department: "Engineering", ShiftStart: "3:00 PM", ShiftEnd: "12:00 AM"},
	}
}

// ==========================================
// DEMO ACTIVITY
// ==========================================

// GetDemoIdleLogs returns idle sessions for the last three days before now,
// leaving the most recent one open.
func GetDemoIdleLogs(now time.Time) []activity.ActivityLog {
	day := now.UTC().Truncate(24 * time.Hour)
	entry := func(user, category, reason string, start time.Time, minutes int) activity.ActivityLog {
		log := activity.ActivityLog{
			User:      user,
			Status:    activity.StatusIdle,
			Category:  category,
			Reason:    reason,
			Timestamp: timePtr(start),
			IdleStart: timePtr(start),
		}
		if minutes > 0 {
			log.IdleEnd = timePtr(start.Add(time.Duration(minutes) * time.Minute))
		}
		return log
	}

	var logs []activity.ActivityLog
	for d := 3; d >= 1; d-- {
		base := day.AddDate(0, 0, -d)
		logs = append(logs,
			entry("Ali Raza", "General", "Tea break", base.Add(17*time.Hour), 12),
			entry("Ali Raza", "Namaz", "Isha", base.Add(15*time.Hour+30*time.Minute), 20),
			entry("Sara Khan", "Official", "Client call", base.Add(6*time.Hour), 35),
			entry("Usman Tariq", "General", "", base.Add(12*time.Hour), 8),
		)
	}
	logs = append(logs, entry("Sara Khan", "General", "", now.UTC().Add(-10*time.Minute), 0))
	return logs
}

// GetDemoAutoBreaks returns machine power-off gaps for the last two days.
func GetDemoAutoBreaks(now time.Time) []autobreak.AutoBreak {
	day := now.UTC().Truncate(24 * time.Hour)
	first := day.AddDate(0, 0, -2).Add(19 * time.Hour)
	second := day.AddDate(0, 0, -1).Add(9 * time.Hour)

	return []autobreak.AutoBreak{
		{
			User:            "Ali Raza",
			BreakStart:      timePtr(first),
			BreakEnd:        timePtr(first.Add(40 * time.Minute)),
			DurationMinutes: intPtr(40),
		},
		{
			User:       "Usman Tariq",
			BreakStart: timePtr(second),
			BreakEnd:   timePtr(second.Add(25 * time.Minute)),
		},
	}
}

// Seed inserts the default employees, demo activity and settings. Employees
// whose emp_id already exists are left as they are.
func Seed(ctx context.Context, repos *repository.Repositories, now time.Time) (*SeededData, error) {
	seeded := NewSeededData()

	for _, e := range GetDefaultEmployees() {
		created, err := repos.Employees.Create(ctx, e)
		if errors.Is(err, employee.ErrEmpIDExists) {
			existing, err := repos.Employees.GetByEmpID(ctx, e.EmpID)
			if err != nil {
				return nil, fmt.Errorf("load employee %s: %w", e.EmpID, err)
			}
			seeded.EmployeeIDs[e.EmpID] = existing.ID
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create employee %s: %w", e.EmpID, err)
		}
		seeded.EmployeeIDs[e.EmpID] = created.ID
	}

	for _, l := range GetDemoIdleLogs(now) {
		if _, err := repos.Activities.Create(ctx, l); err != nil {
			return nil, fmt.Errorf("create idle log: %w", err)
		}
		seeded.IdleLogs++
	}

	for _, b := range GetDemoAutoBreaks(now) {
		if _, err := repos.Breaks.Create(ctx, b); err != nil {
			return nil, fmt.Errorf("create auto break: %w", err)
		}
		seeded.AutoBreaks++
	}

	if err := repos.Settings.Save(ctx, settings.Default()); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	return seeded, nil
}
