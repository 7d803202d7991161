package shift

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultZone is the reference zone shift strings are written in.
const DefaultZone = "Asia/Karachi"

const (
	UnknownDate = "Unknown"

	LabelGeneral = "General"
	LabelShift1  = "Shift 1 (6 PM – 3 AM)"
	LabelShift2  = "Shift 2 (9 PM – 6 AM)"
)

// Layouts tried in order. Input is upper-cased before parsing so am/pm match.
var timeLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04",
}

var dashReplacer = strings.NewReplacer("–", "-", "—", "-")

// ParseTimeToMinutes converts a free-form time of day ("2:30 PM", "9 pm",
// "21:00", "9:00") into minutes since midnight.
func ParseTimeToMinutes(text string) (int, bool) {
	s := strings.TrimSpace(dashReplacer.Replace(text))
	if s == "" {
		return 0, false
	}
	s = strings.ToUpper(s)

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// Label renders the raw shift window the way it is shown in reports.
func Label(shiftStart, shiftEnd string) string {
	return fmt.Sprintf("%s – %s", shiftStart, shiftEnd)
}

// Assignment is the shift day a session is reported under.
type Assignment struct {
	ShiftDate  string `json:"shiftDate"`
	ShiftLabel string `json:"shiftLabel"`
}

// Resolver evaluates shift windows in a fixed reference zone.
type Resolver struct {
	loc *time.Location
}

func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

// LoadResolver builds a Resolver for an IANA zone name.
func LoadResolver(zone string) (*Resolver, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load shift timezone %q: %w", zone, err)
	}
	return NewResolver(loc), nil
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// IsInShift reports whether now falls inside [start, end]. Windows whose end is
// before their start wrap past midnight.
func (r *Resolver) IsInShift(shiftStart, shiftEnd string, now time.Time) bool {
	start, ok := ParseTimeToMinutes(shiftStart)
	if !ok {
		return false
	}
	end, ok := ParseTimeToMinutes(shiftEnd)
	if !ok {
		return false
	}

	local := now.In(r.loc)
	m := local.Hour()*60 + local.Minute()
	if end >= start {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}

// Assign attributes an instant to a shift day. Sessions in the after-midnight
// part of an overnight shift belong to the previous calendar day.
func (r *Resolver) Assign(instant *time.Time, shiftStart, shiftEnd string) Assignment {
	if instant == nil {
		return Assignment{ShiftDate: UnknownDate, ShiftLabel: Label(shiftStart, shiftEnd)}
	}

	local := instant.In(r.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)

	start, okStart := ParseTimeToMinutes(shiftStart)
	end, okEnd := ParseTimeToMinutes(shiftEnd)
	if !okStart || !okEnd {
		hour := local.Hour()
		label := LabelGeneral
		switch {
		case hour >= 18 && hour < 21:
			label = LabelShift1
		case hour >= 21 || hour < 6:
			label = LabelShift2
			if hour < 6 {
				day = day.AddDate(0, 0, -1)
			}
		}
		return Assignment{ShiftDate: day.Format(time.DateOnly), ShiftLabel: label}
	}

	minutes := local.Hour()*60 + local.Minute()
	if end <= start && minutes < end {
		day = day.AddDate(0, 0, -1)
	}
	return Assignment{ShiftDate: day.Format(time.DateOnly), ShiftLabel: Label(shiftStart, shiftEnd)}
}

// Clock formats t as HH:MM:SS in the reference zone.
func (r *Resolver) Clock(t time.Time) string {
	return t.In(r.loc).Format(time.TimeOnly)
}
