package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliotrace/solarmesh/pkg/models"
)

func TestBuildTelemetryPointArgs(t *testing.T) {
	fixed := time.Date(2025, time.May, 20, 8, 15, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	value := 4213.5
	point := &models.TelemetryPoint{
		Time:         fixed.Add(-time.Minute),
		DeviceID:     "dev-1",
		SiteID:       "site-1",
		MetricName:   "pv_power_w",
		ValueNumeric: &value,
		Quality:      models.QualityGood,
		Unit:         "W",
		Source:       "poll",
		Tags:         map[string]string{"phase": "A"},
	}

	args, err := buildTelemetryPointArgs(point)
	require.NoError(t, err)
	require.Len(t, args, 11)

	assert.Equal(t, fixed.Add(-time.Minute), args[0])
	assert.Equal(t, "dev-1", args[1])
	assert.Equal(t, "site-1", args[2])
	assert.Equal(t, "pv_power_w", args[3])
	assert.Equal(t, &value, args[4])
	assert.Nil(t, args[5])
	assert.Equal(t, "good", args[6])
	assert.Equal(t, "W", args[7])
	assert.Equal(t, "poll", args[8])

	tags, ok := args[9].(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"phase":"A"}`, string(tags))

	assert.Equal(t, fixed, args[10], "zero received_at should stamp now")
}

func TestBuildTelemetryPointArgsDefaults(t *testing.T) {
	fixed := time.Date(2025, time.May, 20, 8, 15, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	text := "FAULT_CODE_12"
	point := &models.TelemetryPoint{
		DeviceID:   "dev-1",
		MetricName: "fault_register",
		ValueText:  &text,
	}

	args, err := buildTelemetryPointArgs(point)
	require.NoError(t, err)

	assert.Equal(t, fixed, args[0], "zero time should stamp now")
	assert.Equal(t, "good", args[6], "missing quality should default to good")
	assert.Nil(t, args[9], "empty tags should map to NULL")
}

func TestBuildTelemetryPointArgsRejectsBadInput(t *testing.T) {
	_, err := buildTelemetryPointArgs(nil)
	assert.ErrorIs(t, err, ErrTelemetryPointNil)

	_, err = buildTelemetryPointArgs(&models.TelemetryPoint{MetricName: "pv_power_w"})
	assert.ErrorIs(t, err, ErrDeviceIDRequired)
}

func TestMetricNamesFilter(t *testing.T) {
	assert.Nil(t, metricNamesFilter(nil))
	assert.Nil(t, metricNamesFilter([]string{}))
	assert.Equal(t, []string{"pv_power_w"}, metricNamesFilter([]string{"pv_power_w"}))
}

func TestAggViewForBucket(t *testing.T) {
	view, err := aggViewForBucket(models.Bucket5Min)
	require.NoError(t, err)
	assert.Equal(t, "telemetry_5min", view)

	view, err = aggViewForBucket(models.BucketHourly)
	require.NoError(t, err)
	assert.Equal(t, "telemetry_hourly", view)

	view, err = aggViewForBucket(models.BucketDaily)
	require.NoError(t, err)
	assert.Equal(t, "telemetry_daily", view)

	_, err = aggViewForBucket(models.AggregateBucket("weekly"))
	assert.ErrorIs(t, err, ErrUnsupportedAggBucket)
}
