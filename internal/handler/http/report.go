package http

import (
	"log/slog"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/middleware"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
)

type ReportHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportRequest(r *http.Request) (report.ReportRequest, error) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return report.ReportRequest{}, user.ErrMissingClaims
	}
	query := r.URL.Query()
	return report.ReportRequest{
		From:   query.Get("from"),
		To:     query.Get("to"),
		Caller: principal,
	}, nil
}

// ListEmployees implements ReportHandler
func (h *reportHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	req, err := reportRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.BuildReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// ExportEmployees implements ReportHandler
func (h *reportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	req, err := reportRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Report exported", "role", req.Caller.Role, "filename", export.Filename, "bytes", len(export.Content))
	response.Attachment(w, export.Filename, export.ContentType, export.Content)
}
