package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"log not found", activity.ErrActivityNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped employee not found", fmt.Errorf("resolve: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"invalid idle_start", activity.ErrInvalidIdleStart, http.StatusBadRequest, "BAD_REQUEST"},
		{"already closed", activity.ErrAlreadyClosed, http.StatusBadRequest, "BAD_REQUEST"},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown role", user.ErrUnknownRole, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", user.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate emp_id", employee.ErrEmpIDExists, http.StatusConflict, "CONFLICT"},
		{"report", report.ErrReportBuildFailed, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.OK)
			assert.Equal(t, c.code, body.Code)
			assert.NotEmpty(t, body.Error)
			assert.NotContains(t, body.Error, "connection reset")
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "from", Message: "from must be in YYYY-MM-DD format"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "from must be in YYYY-MM-DD format", body.Details["from"])
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "report.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="report.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "abc", rec.Body.String())
}
