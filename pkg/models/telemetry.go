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

package models

import (
	"encoding/json"
	"time"
)

// TelemetryPoint is one time-stamped metric sample. Exactly one of
// ValueNumeric/ValueText is populated; the pair (Time, DeviceID, MetricName)
// is the idempotency key.
type TelemetryPoint struct {
	Time         time.Time         `json:"time"`
	DeviceID     string            `json:"device_id"`
	SiteID       string            `json:"site_id"`
	MetricName   string            `json:"metric_name"`
	ValueNumeric *float64          `json:"value_numeric,omitempty"`
	ValueText    *string           `json:"value_text,omitempty"`
	Quality      DataQuality       `json:"quality"`
	Unit         string            `json:"unit,omitempty"`
	Source       string            `json:"source,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	ReceivedAt   time.Time         `json:"received_at"`
}

// IngestionBatch accounts for one batched write end to end. The row is
// created with status processing and finalized on every exit path.
type IngestionBatch struct {
	BatchID          string      `json:"batch_id"`
	SourceType       string      `json:"source_type"`
	SourceID         string      `json:"source_id"`
	StartedAt        time.Time   `json:"started_at"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
	DeviceCount      int         `json:"device_count"`
	RecordCount      int         `json:"record_count"`
	RecordsInserted  int         `json:"records_inserted"`
	RecordsFailed    int         `json:"records_failed"`
	Status           BatchStatus `json:"status"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
	ErrorDetail      string      `json:"error_detail,omitempty"`
}

// AggregateBucket selects one of the materialized rollup resolutions.
type AggregateBucket string

const (
	Bucket5Min   AggregateBucket = "5min"
	BucketHourly AggregateBucket = "hourly"
	BucketDaily  AggregateBucket = "daily"
)

// TelemetryAggregate is one rollup row from a continuous aggregate.
type TelemetryAggregate struct {
	BucketStart    time.Time `json:"bucket_start"`
	DeviceID       string    `json:"device_id"`
	SiteID         string    `json:"site_id"`
	MetricName     string    `json:"metric_name"`
	Avg            float64   `json:"avg"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	First          float64   `json:"first"`
	Last           float64   `json:"last"`
	SampleCount    int64     `json:"sample_count"`
	QualityPercent float64   `json:"quality_percent"`
}

// Telemetry is the adapter-facing snapshot of a device's most recent state.
// Pointer fields stay nil for metrics the device did not report; Extra keeps
// unmapped payload keys and Raw keeps the original wire payload.
type Telemetry struct {
	Timestamp       time.Time              `json:"ts"`
	PVPowerW        *float64               `json:"pv_power_w,omitempty"`
	GridPowerW      *float64               `json:"grid_power_w,omitempty"`
	LoadPowerW      *float64               `json:"load_power_w,omitempty"`
	BatteryPowerW   *float64               `json:"battery_power_w,omitempty"`
	BatterySOC      *float64               `json:"battery_soc,omitempty"`
	BatteryVoltageV *float64               `json:"battery_voltage_v,omitempty"`
	BatteryCurrentA *float64               `json:"battery_current_a,omitempty"`
	BatteryTempC    *float64               `json:"battery_temp_c,omitempty"`
	ACPowerW        *float64               `json:"ac_power_w,omitempty"`
	DCPowerW        *float64               `json:"dc_power_w,omitempty"`
	VoltageV        *float64               `json:"voltage_v,omitempty"`
	CurrentA        *float64               `json:"current_a,omitempty"`
	FrequencyHz     *float64               `json:"frequency_hz,omitempty"`
	PowerFactor     *float64               `json:"power_factor,omitempty"`
	TodayEnergyKWh  *float64               `json:"today_energy_kwh,omitempty"`
	TotalEnergyKWh  *float64               `json:"total_energy_kwh,omitempty"`
	TemperatureC    *float64               `json:"temperature_c,omitempty"`
	IrradianceWM2   *float64               `json:"irradiance_w_m2,omitempty"`
	Extra           map[string]interface{} `json:"extra,omitempty"`
	Raw             json.RawMessage        `json:"-"`
	Stale           bool                   `json:"stale,omitempty"`
}

// Empty reports whether the snapshot carries no metric values at all. The
// sentinel snapshot returned before any telemetry arrives is empty.
func (t *Telemetry) Empty() bool {
	return t.PVPowerW == nil && t.GridPowerW == nil && t.LoadPowerW == nil &&
		t.BatteryPowerW == nil && t.BatterySOC == nil && t.BatteryVoltageV == nil &&
		t.BatteryCurrentA == nil && t.BatteryTempC == nil && t.ACPowerW == nil &&
		t.DCPowerW == nil && t.VoltageV == nil && t.CurrentA == nil &&
		t.FrequencyHz == nil && t.PowerFactor == nil && t.TodayEnergyKWh == nil &&
		t.TotalEnergyKWh == nil && t.TemperatureC == nil && t.IrradianceWM2 == nil &&
		len(t.Extra) == 0
}
