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

// Common device event types written by adapters and services.
const (
	EventTypeConnect      = "connect"
	EventTypeDisconnect   = "disconnect"
	EventTypeError        = "error"
	EventTypeAlarm        = "alarm"
	EventTypeStatusChange = "status_change"
	EventTypeFault        = "fault"
	EventTypeCommand      = "command"
)

// DeviceEvent is one append-only journal entry. The triple
// (Time, DeviceID, EventType) is the dedupe key; only the ack fields
// ever change after insert.
type DeviceEvent struct {
	Time           time.Time              `json:"time"`
	DeviceID       string                 `json:"device_id"`
	EventType      string                 `json:"event_type"`
	SiteID         string                 `json:"site_id"`
	EventCode      string                 `json:"event_code,omitempty"`
	Severity       Severity               `json:"severity"`
	Message        string                 `json:"message"`
	Details        map[string]interface{} `json:"details,omitempty"`
	Acknowledged   bool                   `json:"acknowledged"`
	AcknowledgedAt *time.Time             `json:"acknowledged_at,omitempty"`
	AcknowledgedBy string                 `json:"acknowledged_by,omitempty"`
}

// EventFilter narrows event listings. Zero values mean "no constraint".
type EventFilter struct {
	DeviceID     string     `json:"device_id,omitempty"`
	SiteID       string     `json:"site_id,omitempty"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	EventTypes   []string   `json:"event_types,omitempty"`
	Severities   []Severity `json:"severities,omitempty"`
	MinSeverity  Severity   `json:"min_severity,omitempty"`
	Acknowledged *bool      `json:"acknowledged,omitempty"`
	Limit        int        `json:"limit,omitempty"`
}

// EventTypeCount is one (type, severity) bucket from the counts query.
type EventTypeCount struct {
	EventType string   `json:"event_type"`
	Severity  Severity `json:"severity"`
	Count     int64    `json:"count"`
}

// HourlyEventCount is one hour of the site event timeline.
type HourlyEventCount struct {
	Hour     time.Time `json:"hour"`
	SiteID   string    `json:"site_id"`
	Severity Severity  `json:"severity"`
	Count    int64     `json:"count"`
}

// DeviceErrorCount ranks devices by error-grade event volume.
type DeviceErrorCount struct {
	DeviceID string `json:"device_id"`
	Count    int64  `json:"count"`
}

// EventStats aggregates journal state for a device or site.
type EventStats struct {
	Total          int64      `json:"total"`
	Unacknowledged int64      `json:"unacknowledged"`
	RecentErrors   int64      `json:"recent_errors_24h"`
	FirstEventTime *time.Time `json:"first_event_time,omitempty"`
	LastEventTime  *time.Time `json:"last_event_time,omitempty"`
}

// NATSConfig configures NATS connectivity for event fan-out.
type NATSConfig struct {
	URL      string          `json:"url"`
	Domain   string          `json:"domain,omitempty"`
	Security *SecurityConfig `json:"security,omitempty"`
}

var errNATSURLRequired = errors.New("nats url is required")

// Validate ensures the NATS configuration is valid.
func (c *NATSConfig) Validate() error {
	if c.URL == "" {
		return errNATSURLRequired
	}

	return nil
}

// EventsConfig configures publishing of device events to the control plane.
type EventsConfig struct {
	Enabled    bool     `json:"enabled"`
	StreamName string   `json:"stream_name"`
	Subjects   []string `json:"subjects"`
}

// Validate applies stream defaults when publishing is enabled.
func (c *EventsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.StreamName == "" {
		c.StreamName = "telemetry-events"
	}

	if len(c.Subjects) == 0 {
		c.Subjects = []string{"events.device.*", "events.sync.*"}
	}

	return nil
}

// CloudEvent represents a CloudEvents v1.0 compliant event.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}
