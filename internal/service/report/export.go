package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetSessions = "Sessions"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var summaryHeaders = []string{
	"Emp ID", "Name", "Department", "Shift Start", "Shift End",
	"Latest Status", "In Shift Now", "Ongoing Idle", "Ongoing AutoBreak",
	"Sessions", "Idle Minutes", "AutoBreak Minutes",
}

var sessionHeaders = []string{
	"Emp ID", "Name", "Shift Date", "Shift", "Kind", "Start", "End",
	"Duration (min)", "Category", "Reason",
}

// ExportReport implements report.ReportService.
func (s *ReportServiceImpl) ExportReport(ctx context.Context, req report.ReportRequest) (report.Export, error) {
	built, err := s.BuildReport(ctx, req)
	if err != nil {
		return report.Export{}, err
	}

	content, err := renderWorkbook(built)
	if err != nil {
		slog.Error("failed to render report workbook", "error", err)
		return report.Export{}, report.ErrExportFailed
	}

	return report.Export{
		Filename:    fmt.Sprintf("activity-report_%s_%s.xlsx", built.Range.From, built.Range.To),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func renderWorkbook(r report.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSessions); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	if err := writeRow(f, sheetSummary, 1, toCells(summaryHeaders)); err != nil {
		return nil, err
	}
	if err := writeRow(f, sheetSessions, 1, toCells(sessionHeaders)); err != nil {
		return nil, err
	}

	sessionRow := 2
	for i, e := range r.Employees {
		idleMinutes, breakMinutes := 0, 0
		for _, s := range e.IdleSessions {
			if s.Kind == report.SessionAutoBreak {
				breakMinutes += s.Duration
			} else {
				idleMinutes += s.Duration
			}

			err := writeRow(f, sheetSessions, sessionRow, []any{
				e.EmpID, e.Name, s.ShiftDate, s.ShiftLabel, string(s.Kind),
				s.StartTimeLocal, s.EndTimeLocal, s.Duration, s.Category, s.Reason,
			})
			if err != nil {
				return nil, err
			}
			sessionRow++
		}

		err := writeRow(f, sheetSummary, i+2, []any{
			e.EmpID, e.Name, e.Department, e.ShiftStart, e.ShiftEnd,
			e.LatestStatus, yesNo(e.IsInShiftNow), yesNo(e.HasOngoingIdle), yesNo(e.HasOngoingAutoBreak),
			len(e.IdleSessions), idleMinutes, breakMinutes,
		})
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
