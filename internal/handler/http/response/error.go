package response

import (
	"errors"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, user.ErrMissingClaims),
		errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Forbidden")

	// Activity domain errors
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Log not found")
	case errors.Is(err, activity.ErrInvalidIdleStart):
		BadRequest(w, "Invalid idle_start", nil)
	case errors.Is(err, activity.ErrInvalidIdleEnd):
		BadRequest(w, "Invalid idle_end", nil)
	case errors.Is(err, activity.ErrNoIdleStart):
		BadRequest(w, "Log has no idle_start", nil)
	case errors.Is(err, activity.ErrAlreadyClosed):
		BadRequest(w, "Log already closed", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "emp_id already registered")

	// Report domain errors
	case errors.Is(err, report.ErrReportBuildFailed):
		InternalServerError(w, "Failed to build report")
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Failed to export report")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
