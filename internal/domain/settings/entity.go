package settings

import "time"

const (
	DefaultGeneralIdleLimit = 60
	DefaultNamazLimit       = 50
)

// Settings is the singleton idle-limit configuration, in minutes.
type Settings struct {
	GeneralIdleLimit int
	NamazLimit       int
	CreatedAt        *time.Time
}

func Default() Settings {
	return Settings{
		GeneralIdleLimit: DefaultGeneralIdleLimit,
		NamazLimit:       DefaultNamazLimit,
	}
}
