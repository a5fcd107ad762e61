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

var (
	errDeviceIDRequired       = errors.New("device id is required")
	errSerialNumberRequired   = errors.New("serial number is required")
	errOrganizationIDRequired = errors.New("organization id is required")
	errSiteIDRequired         = errors.New("site id is required")
	errDeviceKindRequired     = errors.New("device kind is required")
	errPollingIntervalInvalid = errors.New("polling interval must be at least 1 second")
)

// Device is the telemetry plane's projection of a fleet device. Rows are
// synced from the control plane and never hard-deleted while telemetry
// retention still references them.
type Device struct {
	ID                     string                 `json:"id"`
	SerialNumber           string                 `json:"serial_number"`
	OrganizationID         string                 `json:"organization_id"`
	SiteID                 string                 `json:"site_id"`
	Kind                   DeviceKind             `json:"device_type"`
	Protocol               Protocol               `json:"protocol,omitempty"`
	ConnectionConfig       map[string]interface{} `json:"connection_config,omitempty"`
	ConnectionStatus       ConnectionStatus       `json:"connection_status"`
	LastConnectedAt        *time.Time             `json:"last_connected_at,omitempty"`
	LastDisconnectedAt     *time.Time             `json:"last_disconnected_at,omitempty"`
	ReconnectCount         int                    `json:"reconnect_count"`
	PollingIntervalSeconds int                    `json:"polling_interval_seconds"`
	LastPolledAt           *time.Time             `json:"last_polled_at,omitempty"`
	NextPollAt             *time.Time             `json:"next_poll_at,omitempty"`
	TokenHash              string                 `json:"-"`
	TokenExpiresAt         *time.Time             `json:"token_expires_at,omitempty"`
	Metadata               map[string]interface{} `json:"metadata,omitempty"`
	Decommissioned         bool                   `json:"decommissioned"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
	SyncedAt               *time.Time             `json:"synced_at,omitempty"`
}

// Validate checks the fields a device row cannot be stored without.
func (d *Device) Validate() error {
	if d.ID == "" {
		return errDeviceIDRequired
	}

	if d.SerialNumber == "" {
		return errSerialNumberRequired
	}

	if d.OrganizationID == "" {
		return errOrganizationIDRequired
	}

	if d.SiteID == "" {
		return errSiteIDRequired
	}

	if d.Kind == "" {
		return errDeviceKindRequired
	}

	if d.PollingIntervalSeconds < 1 {
		return errPollingIntervalInvalid
	}

	return nil
}

// PollingInterval returns the configured cadence as a duration.
func (d *Device) PollingInterval() time.Duration {
	return time.Duration(d.PollingIntervalSeconds) * time.Second
}

// DeviceSession is the in-memory record of a connected device. At most one
// session exists per device id.
type DeviceSession struct {
	DeviceID       string    `json:"device_id"`
	SessionID      string    `json:"session_id"`
	ClientAddr     string    `json:"client_addr,omitempty"`
	OpenedAt       time.Time `json:"opened_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// ConnectionStats summarizes the fleet's transport state.
type ConnectionStats struct {
	Total        int64 `json:"total"`
	Connected    int64 `json:"connected"`
	Disconnected int64 `json:"disconnected"`
	Error        int64 `json:"error"`
	Maintenance  int64 `json:"maintenance"`
	Unknown      int64 `json:"unknown"`
}

// DeviceKindCount pairs a device kind with how many registered devices carry it.
type DeviceKindCount struct {
	Kind  DeviceKind `json:"device_type"`
	Count int64      `json:"count"`
}

// TokenStatus reports token and lockout state for operator diagnostics.
type TokenStatus struct {
	DeviceID       string     `json:"device_id"`
	HasToken       bool       `json:"has_token"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	TokenExpired   bool       `json:"token_expired"`
	LockedOut      bool       `json:"locked_out"`
	FailedAttempts int        `json:"failed_attempts"`
	UnlocksAt      *time.Time `json:"unlocks_at,omitempty"`
}
