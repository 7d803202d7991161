package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISO(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	ts := time.Date(2024, 6, 1, 5, 0, 0, 123456789, loc)

	assert.Equal(t, "2024-06-01T00:00:00.123Z", ISO(ts))
	assert.Nil(t, ISOPtr(nil))
	assert.Equal(t, "2024-06-01T00:00:00.123Z", *ISOPtr(&ts))
}

func TestRoundMinutes(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{30 * time.Minute, 30},
		{29*time.Minute + 29*time.Second, 29},
		{29*time.Minute + 30*time.Second, 30},
		{0, 0},
		{-5 * time.Minute, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundMinutes(c.in), "RoundMinutes(%v)", c.in)
	}
}
