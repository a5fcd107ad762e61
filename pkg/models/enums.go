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

// DeviceKind identifies the class of field device.
type DeviceKind string

const (
	DeviceKindInverter       DeviceKind = "inverter"
	DeviceKindMeter          DeviceKind = "meter"
	DeviceKindBattery        DeviceKind = "battery"
	DeviceKindWeatherStation DeviceKind = "weather_station"
	DeviceKindSensor         DeviceKind = "sensor"
	DeviceKindGateway        DeviceKind = "gateway"
)

// Protocol identifies the transport an adapter uses to reach a device.
type Protocol string

const (
	ProtocolModbusTCP Protocol = "modbus_tcp"
	ProtocolModbusRTU Protocol = "modbus_rtu"
	ProtocolMQTT      Protocol = "mqtt"
	ProtocolHTTP      Protocol = "http"
	ProtocolCustom    Protocol = "custom"
)

// ConnectionStatus tracks the transport state of a device.
type ConnectionStatus string

const (
	ConnectionStatusConnected    ConnectionStatus = "connected"
	ConnectionStatusDisconnected ConnectionStatus = "disconnected"
	ConnectionStatusError        ConnectionStatus = "error"
	ConnectionStatusMaintenance  ConnectionStatus = "maintenance"
	ConnectionStatusUnknown      ConnectionStatus = "unknown"
)

// Severity grades device events.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for >= comparisons in event queries.
var severityRank = map[Severity]int{
	SeverityInfo:     0,
	SeverityWarning:  1,
	SeverityError:    2,
	SeverityCritical: 3,
}

// AtLeast reports whether s is as severe or more severe than other.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// CommandStatus tracks a command through its lifecycle.
type CommandStatus string

const (
	CommandStatusPending      CommandStatus = "pending"
	CommandStatusClaimed      CommandStatus = "claimed"
	CommandStatusSent         CommandStatus = "sent"
	CommandStatusAcknowledged CommandStatus = "acknowledged"
	CommandStatusCompleted    CommandStatus = "completed"
	CommandStatusFailed       CommandStatus = "failed"
	CommandStatusCancelled    CommandStatus = "cancelled"
	CommandStatusExpired      CommandStatus = "expired"
)

// IsTerminal reports whether the status permits no further transitions
// other than the explicit failed -> pending retry edge.
func (s CommandStatus) IsTerminal() bool {
	switch s {
	case CommandStatusCompleted, CommandStatusFailed, CommandStatusCancelled, CommandStatusExpired:
		return true
	default:
		return false
	}
}

// DataQuality flags per-point reliability and drives aggregation eligibility.
type DataQuality string

const (
	QualityGood      DataQuality = "good"
	QualityUncertain DataQuality = "uncertain"
	QualityBad       DataQuality = "bad"
	QualityMissing   DataQuality = "missing"
)

// BatchStatus tracks the end-to-end outcome of an ingestion batch.
type BatchStatus string

const (
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusSucceeded  BatchStatus = "succeeded"
	BatchStatusFailed     BatchStatus = "failed"
	BatchStatusPartial    BatchStatus = "partial"
)

// ValueKind distinguishes numeric from textual metric values.
type ValueKind string

const (
	ValueKindFloat  ValueKind = "float"
	ValueKindString ValueKind = "string"
)

// Aggregation names the rollup method applied to a metric.
type Aggregation string

const (
	AggregationAvg   Aggregation = "avg"
	AggregationSum   Aggregation = "sum"
	AggregationMin   Aggregation = "min"
	AggregationMax   Aggregation = "max"
	AggregationFirst Aggregation = "first"
	AggregationLast  Aggregation = "last"
)

// Service-level error codes surfaced through result payloads.
const (
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeLockedOut          = "LOCKED_OUT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeDeviceNotFound     = "DEVICE_NOT_FOUND"
	ErrCodeNoExecutor         = "NO_EXECUTOR"
	ErrCodeException          = "EXCEPTION"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeExpired            = "EXPIRED"
	ErrCodeCancelled          = "CANCELLED"
)
