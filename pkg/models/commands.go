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
	"errors"
	"time"
)

// Command priorities. Lower is more urgent.
const (
	CommandPriorityImmediate = 1
	CommandPriorityDefault   = 5
)

// DefaultCommandMaxRetries bounds the failed -> pending retry edge.
const DefaultCommandMaxRetries = 3

var (
	errCommandDeviceRequired = errors.New("command device id is required")
	errCommandTypeRequired   = errors.New("command type is required")
)

// DeviceCommand is one persisted queue entry. Status transitions are
// monotonic except for the explicit retry edge (failed -> pending).
type DeviceCommand struct {
	ID             string                 `json:"id"`
	DeviceID       string                 `json:"device_id"`
	SiteID         string                 `json:"site_id"`
	CommandType    string                 `json:"command_type"`
	Params         map[string]interface{} `json:"params,omitempty"`
	Status         CommandStatus          `json:"status"`
	Priority       int                    `json:"priority"`
	CreatedBy      string                 `json:"created_by,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	ScheduledAt    *time.Time             `json:"scheduled_at,omitempty"`
	SentAt         *time.Time             `json:"sent_at,omitempty"`
	AcknowledgedAt *time.Time             `json:"acknowledged_at,omitempty"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	ExpiresAt      *time.Time             `json:"expires_at,omitempty"`
	RetryCount     int                    `json:"retry_count"`
	MaxRetries     int                    `json:"max_retries"`
	Result         map[string]interface{} `json:"result,omitempty"`
	ErrorCode      string                 `json:"error_code,omitempty"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
}

// Validate checks the fields a command row cannot be queued without.
func (c *DeviceCommand) Validate() error {
	if c.DeviceID == "" {
		return errCommandDeviceRequired
	}

	if c.CommandType == "" {
		return errCommandTypeRequired
	}

	return nil
}

// CanRetry reports whether the failed command is still under its retry budget.
func (c *DeviceCommand) CanRetry() bool {
	return c.Status == CommandStatusFailed && c.RetryCount < c.MaxRetries
}

// CommandResult is what an executor returns to the dispatcher.
type CommandResult struct {
	Success      bool                   `json:"success"`
	Data         map[string]interface{} `json:"data,omitempty"`
	ErrorCode    string                 `json:"error_code,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

// Adapter-level command actions recognized by every transport.
const (
	ActionRead      = "read"
	ActionWrite     = "write"
	ActionWriteMany = "write_many"
	ActionRaw       = "raw"
	ActionPing      = "ping"
)

// AdapterCommand is the transport-agnostic request an adapter sends to a
// device. Timeout of zero means the adapter default.
type AdapterCommand struct {
	Action  string                 `json:"action"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Timeout time.Duration          `json:"-"`
}

// TOUCapability describes a device's time-of-use window support.
type TOUCapability struct {
	Supported        bool `json:"supported"`
	MaxWindows       int  `json:"max_windows"`
	Bidirectional    bool `json:"bidirectional"`
	ChargeWindows    int  `json:"charge_windows"`
	DischargeWindows int  `json:"discharge_windows"`
}
