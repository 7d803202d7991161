package report

import (
	"testing"

	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     ReportRequest
		wantErr bool
		field   string
	}{
		{name: "empty bounds", req: ReportRequest{}},
		{name: "valid range", req: ReportRequest{From: "2024-05-01", To: "2024-05-07"}},
		{name: "single day", req: ReportRequest{From: "2024-05-01", To: "2024-05-01"}},
		{name: "bad from", req: ReportRequest{From: "05/01/2024"}, wantErr: true, field: "from"},
		{name: "bad to", req: ReportRequest{To: "2024-02-30"}, wantErr: true, field: "to"},
		{name: "reversed", req: ReportRequest{From: "2024-05-08", To: "2024-05-01"}, wantErr: true, field: "to"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if !c.wantErr {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}
