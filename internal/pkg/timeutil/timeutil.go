package timeutil

import "time"

// ISOLayout matches the millisecond UTC form browsers produce for Date.toISOString.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ISO formats t in UTC with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ISOPtr formats t, or returns nil when t is nil.
func ISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := ISO(*t)
	return &s
}

// RoundMinutes returns the duration in whole minutes, rounded half up and
// floored at zero.
func RoundMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + 30*time.Second) / time.Minute)
}
