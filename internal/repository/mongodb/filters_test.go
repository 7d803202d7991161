package mongodb

import (
	"testing"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseObjectID(t *testing.T) {
	oid := bson.NewObjectID()

	got, ok := parseObjectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	_, ok = parseObjectID("GDS-101")
	assert.False(t, ok)
}

func TestOverlapFilter(t *testing.T) {
	r := daterange.FromDates(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC))

	f := overlapFilter([]string{"Ali"}, "idle_start", "idle_end", r)

	assert.Equal(t, bson.M{"$in": []string{"Ali"}}, f["user"])
	assert.Equal(t, bson.M{"$lte": r.To}, f["idle_start"])
	assert.Equal(t, bson.A{
		bson.M{"idle_end": nil},
		bson.M{"idle_end": bson.M{"$gte": r.From}},
	}, f["$or"])
}

func TestUpdateDocument_UnsetsClearedTimes(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	u := updateDocument(activity.ActivityLog{Status: "Idle", Reason: "tea", IdleStart: &start})

	set, ok := u["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, start, set["idle_start"])
	assert.Equal(t, "tea", set["reason"])

	unset, ok := u["$unset"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, unset, "idle_end")
	assert.Contains(t, unset, "timestamp")
	assert.NotContains(t, unset, "idle_start")
}

func TestEmployeeListFilter(t *testing.T) {
	assert.Empty(t, employeeListFilter(employee.EmployeeFilter{}))

	empID := "GDS-1"
	assert.Equal(t, bson.M{"emp_id": "GDS-1"}, employeeListFilter(employee.EmployeeFilter{EmpID: &empID}))
}

func TestAutoBreakDocument_DecodesNumericDurations(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  int
	}{
		{"fractional double", 12.5, 13},
		{"whole double", 12.0, 12},
		{"int32", int32(7), 7},
		{"int64", int64(45), 45},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"user": "Ali", "duration_minutes": c.value})
			require.NoError(t, err)

			var doc autoBreakDocument
			require.NoError(t, bson.Unmarshal(raw, &doc))

			got := doc.toEntity()
			require.NotNil(t, got.DurationMinutes)
			assert.Equal(t, c.want, *got.DurationMinutes)
		})
	}

	raw, err := bson.Marshal(bson.M{"user": "Ali"})
	require.NoError(t, err)
	var doc autoBreakDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Nil(t, doc.toEntity().DurationMinutes)
}

func TestSettingsDocument_FillsMissingLimits(t *testing.T) {
	cases := []struct {
		name        string
		stored      bson.M
		wantGeneral int
		wantNamaz   int
	}{
		{"only namaz", bson.M{"namaz_limit": 40}, settings.DefaultGeneralIdleLimit, 40},
		{"only general", bson.M{"general_idle_limit": 30}, 30, settings.DefaultNamazLimit},
		{"empty", bson.M{}, settings.DefaultGeneralIdleLimit, settings.DefaultNamazLimit},
		{"both", bson.M{"general_idle_limit": 15, "namaz_limit": 0}, 15, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw, err := bson.Marshal(c.stored)
			require.NoError(t, err)

			var doc settingsDocument
			require.NoError(t, bson.Unmarshal(raw, &doc))

			got := doc.toEntity()
			assert.Equal(t, c.wantGeneral, got.GeneralIdleLimit)
			assert.Equal(t, c.wantNamaz, got.NamazLimit)
		})
	}
}
