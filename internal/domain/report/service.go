package report

import "context"

// ReportService builds the per-employee activity report
type ReportService interface {
	// BuildReport fetches and aggregates every employee visible to the caller
	BuildReport(ctx context.Context, req ReportRequest) (Report, error)

	// ExportReport renders the same report as an XLSX workbook
	ExportReport(ctx context.Context, req ReportRequest) (Export, error)
}
