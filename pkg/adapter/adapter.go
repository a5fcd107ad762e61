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

// Package adapter defines the contract between the telemetry plane and the
// protocol drivers that talk to field devices. An Adapter owns one device's
// transport; the poll scheduler and the command dispatcher only ever see
// this interface.
package adapter

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// ConnectivityWindow is how recent cached telemetry must be for
// CheckConnectivity to answer without touching the device.
const ConnectivityWindow = 120 * time.Second

// nowUTC allows tests to override the timestamp source.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Adapter is a live protocol binding for a single device. Connect and Close
// are idempotent; every other method may be called concurrently once
// Connect has returned.
type Adapter interface {
	Connect(ctx context.Context) error
	Close() error

	// Poll returns the freshest telemetry snapshot the adapter holds. It
	// never blocks on the device: push transports answer from cache, and a
	// device that has sent nothing yet yields an empty snapshot marked
	// stale rather than an error.
	Poll(ctx context.Context) (*models.Telemetry, error)

	// HandleCommand executes one device command and always returns a result
	// map. Timeouts and transport failures are reported inside the map
	// ("ok" false plus a reason), never as a panic or lost response.
	HandleCommand(ctx context.Context, cmd models.AdapterCommand) map[string]interface{}

	// ReadSerialNumber answers from the device row when possible and falls
	// back to asking the device.
	ReadSerialNumber(ctx context.Context) (string, error)

	// CheckConnectivity reports whether the device is reachable: cached
	// telemetry within the last two minutes counts, otherwise a ping.
	CheckConnectivity(ctx context.Context) bool

	// TOUCapability reports time-of-use window support.
	TOUCapability() models.TOUCapability
}

// TelemetryHandler receives every decoded telemetry snapshot an adapter
// produces, in arrival order for a given device.
type TelemetryHandler func(ctx context.Context, device *models.Device, snapshot *models.Telemetry)

// StatusHandler receives device connection transitions observed on the
// transport. detail carries the device-reported reason when there is one.
type StatusHandler func(ctx context.Context, device *models.Device, status models.ConnectionStatus, detail string)

// Deps carries everything a protocol driver needs besides the device row.
// Handlers may be nil; adapters must tolerate that.
type Deps struct {
	Logger      logger.Logger
	MQTT        *models.MQTTConfig
	OnTelemetry TelemetryHandler
	OnStatus    StatusHandler
}

// CommandOK builds a success result. Extra fields are merged in after the
// ok/command_id pair, so they cannot mask either key.
func CommandOK(commandID string, fields map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{
		"ok":         true,
		"command_id": commandID,
	}

	for k, v := range fields {
		if k == "ok" || k == "command_id" {
			continue
		}

		out[k] = v
	}

	return out
}

// CommandFailed builds a failure result with a machine-readable reason.
func CommandFailed(commandID, reason string) map[string]interface{} {
	return map[string]interface{}{
		"ok":         false,
		"reason":     reason,
		"command_id": commandID,
	}
}
