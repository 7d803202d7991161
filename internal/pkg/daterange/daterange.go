package daterange

import (
	"math"
	"time"
)

const (
	DefaultDays = 7
	MaxDays     = 31
)

const day = 24 * time.Hour

// Range is an inclusive UTC window [From, To].
type Range struct {
	From time.Time
	To   time.Time
}

// Overlaps is the interval intersection test used to select records for a
// report: the record starts no later than To, and is either still open or
// ends no earlier than From.
func (r Range) Overlaps(start time.Time, end *time.Time) bool {
	if start.After(r.To) {
		return false
	}
	return end == nil || !end.Before(r.From)
}

// Days is the span length rounded up to whole days.
func (r Range) Days() int {
	return int(math.Ceil(float64(r.To.Sub(r.From)) / float64(day)))
}

// Clamp moves From forward so the span never exceeds maxDays.
func (r Range) Clamp(maxDays int) Range {
	if r.Days() > maxDays {
		r.From = r.To.Add(-time.Duration(maxDays) * day)
	}
	return r
}

// StartOfDay returns 00:00:00.000 UTC of the date.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of the date.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// Defaults fills missing bounds with [today-7d, today] as YYYY-MM-DD strings.
func Defaults(from, to string, now time.Time) (string, string) {
	now = now.UTC()
	if from == "" {
		from = now.AddDate(0, 0, -DefaultDays).Format(time.DateOnly)
	}
	if to == "" {
		to = now.Format(time.DateOnly)
	}
	return from, to
}

// FromDates builds the clamped day-aligned window for two calendar dates.
func FromDates(from, to time.Time) Range {
	r := Range{From: StartOfDay(from), To: EndOfDay(to)}
	return r.Clamp(MaxDays)
}
