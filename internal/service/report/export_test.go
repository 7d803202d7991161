package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_ExportReport(t *testing.T) {
	f := newReportFixture(t, *utc(2024, 5, 19, 23, 0))
	f.seed(t)

	out, err := f.service.ExportReport(context.Background(), report.ReportRequest{
		From:   "2024-05-12",
		To:     "2024-05-19",
		Caller: user.Principal{Role: user.RoleSuperAdmin},
	})
	require.NoError(t, err)

	assert.Equal(t, "activity-report_2024-05-12_2024-05-19.xlsx", out.Filename)
	assert.Equal(t, xlsxContentType, out.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(out.Content))
	require.NoError(t, err)
	defer wb.Close()

	summary, err := wb.GetRows(sheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, summaryHeaders, summary[0])
	assert.Equal(t, "E1", summary[1][0])
	assert.Equal(t, "Idle", summary[1][5])
	assert.Equal(t, "75", summary[1][10])
	assert.Equal(t, "30", summary[1][11])

	sessions, err := wb.GetRows(sheetSessions)
	require.NoError(t, err)
	// Header, three sessions of Ali and one of Sara.
	assert.Len(t, sessions, 5)
	assert.Equal(t, "AutoBreak", sessions[1][4])
}

func TestReportService_ExportReport_ValidationError(t *testing.T) {
	f := newReportFixture(t, *utc(2024, 5, 19, 23, 0))

	_, err := f.service.ExportReport(context.Background(), report.ReportRequest{To: "19-05-2024"})
	assert.Error(t, err)
}
