/*
 * Copyright 2025 Heliotrace Systems, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTelemetryMapsVendorAliases(t *testing.T) {
	received := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	payload := []byte(`{
		"ts": "2025-06-01T11:59:30Z",
		"solar_power": 4820.5,
		"meter_power": -1200,
		"soc": 87.5,
		"e_today": 14.2,
		"grid_frequency": 49.98
	}`)

	snapshot, err := decodeTelemetry(payload, received)
	require.NoError(t, err)

	require.NotNil(t, snapshot.PVPowerW)
	assert.InDelta(t, 4820.5, *snapshot.PVPowerW, 0.001)

	require.NotNil(t, snapshot.GridPowerW)
	assert.InDelta(t, -1200, *snapshot.GridPowerW, 0.001)

	require.NotNil(t, snapshot.BatterySOC)
	assert.InDelta(t, 87.5, *snapshot.BatterySOC, 0.001)

	require.NotNil(t, snapshot.TodayEnergyKWh)
	assert.InDelta(t, 14.2, *snapshot.TodayEnergyKWh, 0.001)

	require.NotNil(t, snapshot.FrequencyHz)
	assert.InDelta(t, 49.98, *snapshot.FrequencyHz, 0.001)

	assert.Equal(t, time.Date(2025, 6, 1, 11, 59, 30, 0, time.UTC), snapshot.Timestamp)
	assert.Empty(t, snapshot.Extra)
	assert.JSONEq(t, string(payload), string(snapshot.Raw))
}

func TestDecodeTelemetryCanonicalKeyBeatsAlias(t *testing.T) {
	payload := []byte(`{"pv_power_w": 5000, "dc_power": 4800}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	require.NotNil(t, snapshot.PVPowerW)
	assert.InDelta(t, 5000, *snapshot.PVPowerW, 0.001)

	// The displaced alias value survives under its vendor name.
	require.Contains(t, snapshot.Extra, "dc_power")
	assert.InDelta(t, 4800, snapshot.Extra["dc_power"].(float64), 0.001)
}

func TestDecodeTelemetryFirstAliasWinsOthersPreserved(t *testing.T) {
	payload := []byte(`{"pv_power": 100, "solar_power": 200}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	require.NotNil(t, snapshot.PVPowerW)
	assert.InDelta(t, 100, *snapshot.PVPowerW, 0.001)

	require.Contains(t, snapshot.Extra, "solar_power")
	assert.NotContains(t, snapshot.Extra, "pv_power")
}

func TestDecodeTelemetryAliasesAreCaseInsensitive(t *testing.T) {
	payload := []byte(`{"Battery_SOC": 55, "Grid_Voltage": 239.8}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	require.NotNil(t, snapshot.BatterySOC)
	assert.InDelta(t, 55, *snapshot.BatterySOC, 0.001)

	require.NotNil(t, snapshot.VoltageV)
	assert.InDelta(t, 239.8, *snapshot.VoltageV, 0.001)

	assert.Empty(t, snapshot.Extra)
}

func TestDecodeTelemetryStringNumerics(t *testing.T) {
	payload := []byte(`{"voltage": "239.8", "current": " 12.5 "}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	require.NotNil(t, snapshot.VoltageV)
	assert.InDelta(t, 239.8, *snapshot.VoltageV, 0.001)

	require.NotNil(t, snapshot.CurrentA)
	assert.InDelta(t, 12.5, *snapshot.CurrentA, 0.001)
}

func TestDecodeTelemetryNonNumericKnownKeyGoesToExtra(t *testing.T) {
	payload := []byte(`{"voltage_v": "fault", "pv_power": 3100}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	assert.Nil(t, snapshot.VoltageV)
	require.Contains(t, snapshot.Extra, "voltage_v")
	assert.Equal(t, "fault", snapshot.Extra["voltage_v"])

	require.NotNil(t, snapshot.PVPowerW)
	assert.InDelta(t, 3100, *snapshot.PVPowerW, 0.001)
}

func TestDecodeTelemetryUnknownKeysPreserved(t *testing.T) {
	payload := []byte(`{"ts": "2025-06-01T12:00:00Z", "vendor_code": "E03", "fan_rpm": 1200, "ac_power": 2500}`)

	snapshot, err := decodeTelemetry(payload, time.Now())
	require.NoError(t, err)

	require.NotNil(t, snapshot.ACPowerW)

	assert.Equal(t, "E03", snapshot.Extra["vendor_code"])
	assert.InDelta(t, 1200, snapshot.Extra["fan_rpm"].(float64), 0.001)
	assert.NotContains(t, snapshot.Extra, "ts")
	assert.NotContains(t, snapshot.Extra, "ac_power")
}

func TestDecodeTelemetryTimestamps(t *testing.T) {
	received := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payload string
		want    time.Time
	}{
		{
			name:    "rfc3339 ts",
			payload: `{"ts": "2025-06-01T11:30:00Z"}`,
			want:    time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC),
		},
		{
			name:    "rfc3339 with offset normalized to utc",
			payload: `{"ts": "2025-06-01T13:30:00+02:00"}`,
			want:    time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC),
		},
		{
			name:    "timestamp accepted on input",
			payload: `{"timestamp": "2025-06-01T11:45:00Z"}`,
			want:    time.Date(2025, 6, 1, 11, 45, 0, 0, time.UTC),
		},
		{
			name:    "ts preferred over timestamp",
			payload: `{"ts": "2025-06-01T11:30:00Z", "timestamp": "2025-06-01T09:00:00Z"}`,
			want:    time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC),
		},
		{
			name:    "numeric epoch seconds",
			payload: `{"ts": 1748777400}`,
			want:    time.Unix(1748777400, 0).UTC(),
		},
		{
			name:    "missing falls back to arrival time",
			payload: `{"pv_power": 100}`,
			want:    received,
		},
		{
			name:    "unparseable falls back to arrival time",
			payload: `{"ts": "yesterday-ish"}`,
			want:    received,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := decodeTelemetry([]byte(tt.payload), received)
			require.NoError(t, err)
			assert.Equal(t, tt.want, snapshot.Timestamp)
		})
	}
}

func TestDecodeTelemetryRejectsNonObjectPayloads(t *testing.T) {
	for _, payload := range []string{`[1,2,3]`, `"power"`, `not json at all`} {
		_, err := decodeTelemetry([]byte(payload), time.Now())
		assert.Error(t, err, "payload %q should not decode", payload)
	}
}
