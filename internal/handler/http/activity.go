package http

import (
	"log/slog"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ActivityHandler interface {
	UpdateActivity(w http.ResponseWriter, r *http.Request)
	EndActivity(w http.ResponseWriter, r *http.Request)
	DeleteActivity(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.ActivityService
}

type activityResult struct {
	OK  bool                         `json:"ok"`
	Log activity.ActivityLogResponse `json:"log"`
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// UpdateActivity implements ActivityHandler
func (h *activityHandlerImpl) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req activity.UpdateActivityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		slog.Error("UpdateActivity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.activityService.UpdateActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, activityResult{OK: true, Log: result})
}

// EndActivity implements ActivityHandler
func (h *activityHandlerImpl) EndActivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityService.EndActivity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, activityResult{OK: true, Log: result})
}

// DeleteActivity implements ActivityHandler
func (h *activityHandlerImpl) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.activityService.DeleteActivity(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w)
}
