package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnomaliesJSON(t *testing.T) {
	t.Run("empty renders the absent marker", func(t *testing.T) {
		b, err := json.Marshal(Anomalies(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `"Absent"`, string(b))
	})

	t.Run("non-empty renders a list", func(t *testing.T) {
		b, err := json.Marshal(Anomalies{"missing OUT after 09:00:00"})
		require.NoError(t, err)
		assert.JSONEq(t, `["missing OUT after 09:00:00"]`, string(b))
	})

	t.Run("decodes both shapes", func(t *testing.T) {
		var a Anomalies
		require.NoError(t, json.Unmarshal([]byte(`"Absent"`), &a))
		assert.Empty(t, a)
		require.NoError(t, json.Unmarshal([]byte(`["x","y"]`), &a))
		assert.Equal(t, Anomalies{"x", "y"}, a)
		assert.Error(t, json.Unmarshal([]byte(`"Present"`), &a))
	})
}

func TestDailySummaryFieldNames(t *testing.T) {
	late := LateOnTime
	row := DailySummary{Name: "Alice", RFID: "T1", Date: "2024-01-01", LateStatus: &late}
	b, err := json.Marshal(row)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	for _, key := range []string{"name", "rfid", "date", "login_time", "logout_time", "Effective_login", "Break_hours", "Total_login", "errors", "late_status"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "log_cabin")
	assert.Equal(t, "Absent", fields["errors"])
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" in ")
	require.NoError(t, err)
	assert.Equal(t, DirectionIn, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestParseDuplicateInPolicy(t *testing.T) {
	p, err := ParseDuplicateInPolicy("")
	require.NoError(t, err)
	assert.Equal(t, KeepFirstOpen, p)

	p, err = ParseDuplicateInPolicy("reset-on-duplicate")
	require.NoError(t, err)
	assert.Equal(t, ResetOnDuplicate, p)

	_, err = ParseDuplicateInPolicy("close-and-reopen")
	assert.Error(t, err)
}

func TestSwipeRequestValidate(t *testing.T) {
	req := &SwipeRequest{RFID: " T1 ", CabinID: "LC-1", Direction: "IN"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "T1", req.RFID)

	err := (&SwipeRequest{CabinID: "LC-1"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Missing RFID field", err.Error())

	err = (&SwipeRequest{RFID: "T1"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Missing ID field", err.Error())
}
