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
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// telemetryAliases maps the field names devices actually send to canonical
// metric slugs. Vendors disagree on nearly every name, so the mapping is
// deliberately liberal. Note that bare "dc_power" means PV output on most
// string inverters; only the explicit "dc_power_w" lands on the DC bus
// metric.
var telemetryAliases = map[string]string{
	"pv_power_w":  "pv_power_w",
	"pv_power":    "pv_power_w",
	"solar_power": "pv_power_w",
	"dc_power":    "pv_power_w",

	"grid_power_w": "grid_power_w",
	"grid_power":   "grid_power_w",
	"meter_power":  "grid_power_w",

	"load_power_w":      "load_power_w",
	"load_power":        "load_power_w",
	"consumption_power": "load_power_w",
	"house_power":       "load_power_w",

	"battery_power_w": "battery_power_w",
	"battery_power":   "battery_power_w",
	"batt_power":      "battery_power_w",

	"battery_soc":     "battery_soc",
	"soc":             "battery_soc",
	"state_of_charge": "battery_soc",

	"battery_voltage_v": "battery_voltage_v",
	"battery_voltage":   "battery_voltage_v",
	"batt_voltage":      "battery_voltage_v",

	"battery_current_a": "battery_current_a",
	"battery_current":   "battery_current_a",
	"batt_current":      "battery_current_a",

	"battery_temp_c":      "battery_temp_c",
	"battery_temp":        "battery_temp_c",
	"battery_temperature": "battery_temp_c",

	"ac_power_w":   "ac_power_w",
	"ac_power":     "ac_power_w",
	"active_power": "ac_power_w",
	"output_power": "ac_power_w",

	"dc_power_w": "dc_power_w",

	"voltage_v":    "voltage_v",
	"voltage":      "voltage_v",
	"grid_voltage": "voltage_v",

	"current_a": "current_a",
	"current":   "current_a",

	"frequency_hz":   "frequency_hz",
	"frequency":      "frequency_hz",
	"grid_frequency": "frequency_hz",
	"freq":           "frequency_hz",

	"power_factor": "power_factor",
	"pf":           "power_factor",
	"cos_phi":      "power_factor",

	"today_energy_kwh": "today_energy_kwh",
	"today_energy":     "today_energy_kwh",
	"daily_energy":     "today_energy_kwh",
	"e_today":          "today_energy_kwh",

	"total_energy_kwh": "total_energy_kwh",
	"total_energy":     "total_energy_kwh",
	"lifetime_energy":  "total_energy_kwh",
	"e_total":          "total_energy_kwh",

	"temperature_c": "temperature_c",
	"temperature":   "temperature_c",
	"temp":          "temperature_c",
	"internal_temp": "temperature_c",

	"irradiance_w_m2":  "irradiance_w_m2",
	"irradiance":       "irradiance_w_m2",
	"solar_irradiance": "irradiance_w_m2",
}

// decodeTelemetry maps a device payload into a snapshot. Recognized aliases
// land on typed fields, everything else is preserved under Extra, and the
// untouched payload is kept in Raw. The canonical timestamp key is "ts";
// "timestamp" is accepted on input only.
func decodeTelemetry(payload []byte, receivedAt time.Time) (*models.Telemetry, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("decode telemetry: %w", err)
	}

	snapshot := &models.Telemetry{
		Raw: append(json.RawMessage(nil), payload...),
	}
	snapshot.Timestamp = extractTimestamp(fields, receivedAt)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	assigned := make(map[string]bool)

	// Exact canonical keys claim their slot before any vendor alias can.
	for _, key := range keys {
		lower := strings.ToLower(key)

		slug, known := telemetryAliases[lower]
		if !known || slug != lower {
			continue
		}

		if num, ok := numericValue(fields[key]); ok {
			setMetric(snapshot, slug, num)
			assigned[slug] = true
		}
	}

	for _, key := range keys {
		lower := strings.ToLower(key)
		if lower == "ts" || lower == "timestamp" {
			continue
		}

		if slug, known := telemetryAliases[lower]; known {
			if num, ok := numericValue(fields[key]); ok {
				if slug == lower {
					continue
				}

				if !assigned[slug] {
					setMetric(snapshot, slug, num)
					assigned[slug] = true

					continue
				}
				// Slot already claimed; fall through so the value survives
				// under its vendor name.
			}
		}

		if snapshot.Extra == nil {
			snapshot.Extra = make(map[string]interface{})
		}

		snapshot.Extra[key] = fields[key]
	}

	return snapshot, nil
}

// extractTimestamp reads ts (or timestamp) as RFC 3339, falling back to
// numeric epoch seconds, then to the arrival time.
func extractTimestamp(fields map[string]interface{}, receivedAt time.Time) time.Time {
	for _, key := range []string{"ts", "timestamp"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}

		if s, ok := raw.(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t.UTC()
			}
		}

		if epoch, ok := numericValue(raw); ok {
			return time.Unix(int64(epoch), 0).UTC()
		}
	}

	return receivedAt
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return parsed, true
		}
	}

	return 0, false
}

func setMetric(snapshot *models.Telemetry, slug string, v float64) {
	switch slug {
	case "pv_power_w":
		snapshot.PVPowerW = &v
	case "grid_power_w":
		snapshot.GridPowerW = &v
	case "load_power_w":
		snapshot.LoadPowerW = &v
	case "battery_power_w":
		snapshot.BatteryPowerW = &v
	case "battery_soc":
		snapshot.BatterySOC = &v
	case "battery_voltage_v":
		snapshot.BatteryVoltageV = &v
	case "battery_current_a":
		snapshot.BatteryCurrentA = &v
	case "battery_temp_c":
		snapshot.BatteryTempC = &v
	case "ac_power_w":
		snapshot.ACPowerW = &v
	case "dc_power_w":
		snapshot.DCPowerW = &v
	case "voltage_v":
		snapshot.VoltageV = &v
	case "current_a":
		snapshot.CurrentA = &v
	case "frequency_hz":
		snapshot.FrequencyHz = &v
	case "power_factor":
		snapshot.PowerFactor = &v
	case "today_energy_kwh":
		snapshot.TodayEnergyKWh = &v
	case "total_energy_kwh":
		snapshot.TotalEnergyKWh = &v
	case "temperature_c":
		snapshot.TemperatureC = &v
	case "irradiance_w_m2":
		snapshot.IrradianceWM2 = &v
	}
}
