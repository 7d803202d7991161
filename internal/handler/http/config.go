package http

import (
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
)

type ConfigHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewConfigHandler(settingsService settings.SettingsService) ConfigHandler {
	return &configHandlerImpl{settingsService: settingsService}
}

// GetConfig implements ConfigHandler. It always answers 200.
func (h *configHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.settingsService.PublicConfig(r.Context()))
}
