package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliotrace/solarmesh/pkg/models"
)

func TestBuildDeviceEventArgs(t *testing.T) {
	fixed := time.Date(2025, time.April, 2, 16, 45, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	event := &models.DeviceEvent{
		Time:      fixed.Add(-5 * time.Minute),
		DeviceID:  "dev-1",
		EventType: models.EventTypeFault,
		SiteID:    "site-1",
		EventCode: "E042",
		Severity:  models.SeverityCritical,
		Message:   "DC overvoltage",
		Details:   map[string]interface{}{"string": 2},
	}

	args, err := buildDeviceEventArgs(event)
	require.NoError(t, err)
	require.Len(t, args, 8)

	assert.Equal(t, fixed.Add(-5*time.Minute), args[0])
	assert.Equal(t, "dev-1", args[1])
	assert.Equal(t, models.EventTypeFault, args[2])
	assert.Equal(t, "site-1", args[3])
	assert.Equal(t, "E042", args[4])
	assert.Equal(t, "critical", args[5])
	assert.Equal(t, "DC overvoltage", args[6])

	details, ok := args[7].(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"string":2}`, string(details))
}

func TestBuildDeviceEventArgsDefaults(t *testing.T) {
	fixed := time.Date(2025, time.April, 2, 16, 45, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	event := &models.DeviceEvent{
		DeviceID:  "dev-1",
		EventType: models.EventTypeConnect,
	}

	args, err := buildDeviceEventArgs(event)
	require.NoError(t, err)

	assert.Equal(t, fixed, args[0], "zero time should stamp now")
	assert.Equal(t, "info", args[5], "missing severity should default to info")
	assert.Nil(t, args[7], "empty details should map to NULL")
}

func TestBuildDeviceEventArgsRejectsBadInput(t *testing.T) {
	_, err := buildDeviceEventArgs(nil)
	assert.ErrorIs(t, err, ErrDeviceEventNil)

	_, err = buildDeviceEventArgs(&models.DeviceEvent{EventType: models.EventTypeError})
	assert.ErrorIs(t, err, ErrDeviceIDRequired)

	_, err = buildDeviceEventArgs(&models.DeviceEvent{DeviceID: "dev-1"})
	assert.ErrorIs(t, err, ErrEventTypeRequired)
}

func TestBuildEventFilterClause(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	acked := false

	filter := &models.EventFilter{
		DeviceID:     "dev-1",
		SiteID:       "site-1",
		Start:        &start,
		End:          &end,
		EventTypes:   []string{"fault", "alarm"},
		Acknowledged: &acked,
	}

	where, args, err := buildEventFilterClause(filter)
	require.NoError(t, err)
	require.Len(t, args, 6)

	assert.Contains(t, where, "device_id = $1")
	assert.Contains(t, where, "site_id = $2")
	assert.Contains(t, where, "time >= $3")
	assert.Contains(t, where, "time <= $4")
	assert.Contains(t, where, "event_type = ANY($5)")
	assert.Contains(t, where, "acknowledged = $6")

	assert.Equal(t, "dev-1", args[0])
	assert.Equal(t, start, args[2])
	assert.Equal(t, []string{"fault", "alarm"}, args[4])
	assert.Equal(t, false, args[5])
}

func TestBuildEventFilterClauseEmptyFilter(t *testing.T) {
	where, args, err := buildEventFilterClause(&models.EventFilter{})
	require.NoError(t, err)

	assert.Empty(t, where)
	assert.Empty(t, args)

	_, _, err = buildEventFilterClause(nil)
	assert.ErrorIs(t, err, ErrEventFilterNil)
}

func TestBuildEventFilterClauseMinSeverity(t *testing.T) {
	filter := &models.EventFilter{MinSeverity: models.SeverityError}

	where, args, err := buildEventFilterClause(filter)
	require.NoError(t, err)
	require.Len(t, args, 1)

	assert.Contains(t, where, "severity = ANY($1)")
	assert.Equal(t, []string{"error", "critical"}, args[0])
}

func TestSeveritiesAtLeast(t *testing.T) {
	assert.Equal(t, []string{"info", "warning", "error", "critical"}, severitiesAtLeast(models.SeverityInfo))
	assert.Equal(t, []string{"warning", "error", "critical"}, severitiesAtLeast(models.SeverityWarning))
	assert.Equal(t, []string{"critical"}, severitiesAtLeast(models.SeverityCritical))
}
