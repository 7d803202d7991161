package settings

import "github.com/fasihgds-afk/activity-detector-backend/internal/pkg/timeutil"

// CategoryColors are the UI colours for each idle category.
var CategoryColors = map[string]string{
	"Official":  "#3b82f6",
	"General":   "#f59e0b",
	"Namaz":     "#10b981",
	"AutoBreak": "#ef4444",
}

type SettingsResponse struct {
	GeneralIdleLimit int     `json:"general_idle_limit"`
	NamazLimit       int     `json:"namaz_limit"`
	CreatedAt        *string `json:"created_at,omitempty"`
}

func NewSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		GeneralIdleLimit: s.GeneralIdleLimit,
		NamazLimit:       s.NamazLimit,
		CreatedAt:        timeutil.ISOPtr(s.CreatedAt),
	}
}

type PublicConfigResponse struct {
	GeneralIdleLimit int               `json:"generalIdleLimit"`
	NamazLimit       int               `json:"namazLimit"`
	CategoryColors   map[string]string `json:"categoryColors"`
}
