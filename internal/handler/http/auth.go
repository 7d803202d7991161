package http

import (
	"log/slog"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/middleware"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

type meResponse struct {
	OK   bool          `json:"ok"`
	User auth.UserInfo `json:"user"`
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := decodeJSON(w, r, &loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	resp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "identifier", loginReq.Identifier, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Login succeeded", "role", resp.User.Role)
	response.JSON(w, resp)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.HandleError(w, user.ErrMissingClaims)
		return
	}

	response.JSON(w, meResponse{OK: true, User: auth.NewUserInfo(principal)})
}
