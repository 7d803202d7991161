package report

import "errors"

var (
	ErrReportBuildFailed = errors.New("failed to build report")
	ErrExportFailed      = errors.New("failed to export report")
)
