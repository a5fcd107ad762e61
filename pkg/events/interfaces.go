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

package events

//go:generate mockgen -destination=mock_events.go -package=events github.com/heliotrace/solarmesh/pkg/events Service,Publisher

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Publisher fans appended events out to the control plane. The journal
// treats fan-out as best effort; local persistence is the source of truth.
type Publisher interface {
	PublishDeviceEvent(ctx context.Context, event *models.DeviceEvent) error
}

// Service is the device event journal.
type Service interface {
	Append(ctx context.Context, event *models.DeviceEvent) error
	// AppendBatch journals a batch, skipping invalid entries and
	// collapsing duplicates of the (time, device, type) key. It returns
	// the number of events journaled.
	AppendBatch(ctx context.Context, events []*models.DeviceEvent) (int, error)

	List(ctx context.Context, filter *models.EventFilter) ([]*models.DeviceEvent, error)
	RecentErrors(ctx context.Context, siteID string, window time.Duration) ([]*models.DeviceEvent, error)

	Acknowledge(ctx context.Context, deviceID, eventType string, eventTime time.Time, user string) (bool, error)
	AcknowledgeDevice(ctx context.Context, deviceID, user string) (int64, error)
	AcknowledgeSite(ctx context.Context, siteID, user string) (int64, error)

	CountsByTypeSeverity(ctx context.Context, siteID string, start, end time.Time) ([]models.EventTypeCount, error)
	HourlyTimeline(ctx context.Context, siteID string, start, end time.Time) ([]models.HourlyEventCount, error)
	TopErrorDevices(ctx context.Context, siteID string, since time.Time, limit int) ([]models.DeviceErrorCount, error)

	DeleteOlderThan(ctx context.Context, before time.Time, keepUnacknowledged bool) (int64, error)
	Stats(ctx context.Context, deviceID, siteID string) (*models.EventStats, error)
}
