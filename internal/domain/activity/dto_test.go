package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateActivityRequest_IgnoredFields(t *testing.T) {
	var req UpdateActivityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"reason": 5, "category": "Namaz", "idle_end": false, "status": null}`), &req))

	assert.Equal(t, []string{"idle_end", "reason"}, req.IgnoredFields())
	assert.True(t, req.Reason.IsUnset())
	assert.True(t, req.Status.IsClear())

	category, ok := req.Category.Get()
	assert.True(t, ok)
	assert.Equal(t, "Namaz", category)
}
