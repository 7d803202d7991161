package report

import (
	"slices"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/shift"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/timeutil"
)

const (
	clockOngoing = "Ongoing"
	clockMissing = "N/A"
)

// Timeline is the merged session list of one employee.
type Timeline struct {
	Sessions            []report.Session
	HasOngoingIdle      bool
	HasOngoingAutoBreak bool
}

type timelineEntry struct {
	start   time.Time
	session report.Session
}

// BuildTimeline converts idle logs and auto-breaks into sessions attributed
// to shift days, merged ascending by start. Idle sessions precede breaks
// that start at the same instant. Open idle sessions are measured up to now.
func BuildTimeline(resolver *shift.Resolver, emp employee.Employee, logs []activity.ActivityLog, breaks []autobreak.AutoBreak, now time.Time) Timeline {
	var tl Timeline
	entries := make([]timelineEntry, 0, len(logs)+len(breaks))

	for _, l := range logs {
		if !l.IsIdleSession() {
			continue
		}
		if l.IdleEnd == nil {
			tl.HasOngoingIdle = true
		}
		entries = append(entries, timelineEntry{
			start:   *l.IdleStart,
			session: idleSession(resolver, emp, l, now),
		})
	}

	for _, b := range breaks {
		if b.IsOpen() {
			tl.HasOngoingAutoBreak = true
		}
		start := time.Unix(0, 0)
		if b.BreakStart != nil {
			start = *b.BreakStart
		}
		entries = append(entries, timelineEntry{
			start:   start,
			session: breakSession(resolver, emp, b),
		})
	}

	slices.SortStableFunc(entries, func(a, b timelineEntry) int {
		return a.start.Compare(b.start)
	})

	tl.Sessions = make([]report.Session, len(entries))
	for i, e := range entries {
		tl.Sessions[i] = e.session
	}
	return tl
}

func idleSession(resolver *shift.Resolver, emp employee.Employee, l activity.ActivityLog, now time.Time) report.Session {
	start := *l.IdleStart
	end := now
	endClock := clockOngoing
	if l.IdleEnd != nil {
		end = *l.IdleEnd
		endClock = resolver.Clock(end)
	}

	assigned := resolver.Assign(&start, emp.ShiftStart, emp.ShiftEnd)
	return report.Session{
		ID:             l.ID,
		Kind:           report.SessionIdle,
		IdleStart:      timeutil.ISOPtr(l.IdleStart),
		IdleEnd:        timeutil.ISOPtr(l.IdleEnd),
		StartTimeLocal: resolver.Clock(start),
		EndTimeLocal:   endClock,
		Reason:         l.Reason,
		Category:       l.Category,
		Duration:       timeutil.RoundMinutes(end.Sub(start)),
		ShiftDate:      assigned.ShiftDate,
		ShiftLabel:     assigned.ShiftLabel,
	}
}

// breakSession prefers the shift and duration the agent stored with the break.
func breakSession(resolver *shift.Resolver, emp employee.Employee, b autobreak.AutoBreak) report.Session {
	assigned := resolver.Assign(b.BreakStart, emp.ShiftStart, emp.ShiftEnd)
	shiftDate := b.ShiftDate
	if shiftDate == "" {
		shiftDate = assigned.ShiftDate
	}
	shiftLabel := b.ShiftLabel
	if shiftLabel == "" {
		shiftLabel = assigned.ShiftLabel
	}

	duration := 0
	switch {
	case b.DurationMinutes != nil:
		duration = *b.DurationMinutes
	case b.BreakStart != nil && b.BreakEnd != nil:
		duration = timeutil.RoundMinutes(b.BreakEnd.Sub(*b.BreakStart))
	}

	startClock, endClock := clockMissing, clockMissing
	if b.BreakStart != nil {
		startClock = resolver.Clock(*b.BreakStart)
	}
	if b.BreakEnd != nil {
		endClock = resolver.Clock(*b.BreakEnd)
	}

	return report.Session{
		ID:             b.ID,
		Kind:           report.SessionAutoBreak,
		IdleStart:      timeutil.ISOPtr(b.BreakStart),
		IdleEnd:        timeutil.ISOPtr(b.BreakEnd),
		StartTimeLocal: startClock,
		EndTimeLocal:   endClock,
		Reason:         autobreak.Reason,
		Category:       autobreak.Category,
		Duration:       duration,
		ShiftDate:      shiftDate,
		ShiftLabel:     shiftLabel,
	}
}
