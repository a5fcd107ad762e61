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

// Package events is the append-only device event journal. Events are
// immutable once written except for acknowledgement, which is idempotent
// set-if-null.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

const (
	defaultErrorWindow    = 24 * time.Hour
	defaultTopDeviceLimit = 10
)

// nowUTC allows tests to override the timestamp source.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Journal implements Service over the store with optional control-plane
// fan-out.
type Journal struct {
	db        db.Service
	publisher Publisher
	logger    logger.Logger
}

// NewJournal creates the event journal. publisher may be nil; events are
// then only written locally.
func NewJournal(database db.Service, publisher Publisher, log logger.Logger) *Journal {
	return &Journal{
		db:        database,
		publisher: publisher,
		logger:    log,
	}
}

// Append journals one event. Zero Time defaults to now, empty Severity to
// info. Fan-out failure is logged, never surfaced: the journal row is
// already durable.
func (j *Journal) Append(ctx context.Context, event *models.DeviceEvent) error {
	if err := normalizeEvent(event); err != nil {
		return err
	}

	if err := j.db.StoreDeviceEvents(ctx, []*models.DeviceEvent{event}); err != nil {
		return fmt.Errorf("store device event: %w", err)
	}

	j.fanOut(ctx, event)

	return nil
}

// AppendBatch journals a batch in one store round trip. Invalid entries
// are skipped with a log line; duplicates of the (time, device, type) key
// keep the first occurrence.
func (j *Journal) AppendBatch(ctx context.Context, events []*models.DeviceEvent) (int, error) {
	keep := make([]*models.DeviceEvent, 0, len(events))
	seen := make(map[string]bool, len(events))

	for _, event := range events {
		if err := normalizeEvent(event); err != nil {
			j.logger.Warn().Err(err).Msg("Skipping invalid device event in batch")
			continue
		}

		key := eventKey(event)
		if seen[key] {
			continue
		}

		seen[key] = true

		keep = append(keep, event)
	}

	if len(keep) == 0 {
		return 0, nil
	}

	if err := j.db.StoreDeviceEvents(ctx, keep); err != nil {
		return 0, fmt.Errorf("store device events: %w", err)
	}

	for _, event := range keep {
		j.fanOut(ctx, event)
	}

	return len(keep), nil
}

func (j *Journal) fanOut(ctx context.Context, event *models.DeviceEvent) {
	if j.publisher == nil {
		return
	}

	if err := j.publisher.PublishDeviceEvent(ctx, event); err != nil {
		j.logger.Warn().
			Err(err).
			Str("device_id", event.DeviceID).
			Str("event_type", event.EventType).
			Msg("Device event fan-out failed")
	}
}

// List returns events matching the filter. Scope validation happens in the
// store layer.
func (j *Journal) List(ctx context.Context, filter *models.EventFilter) ([]*models.DeviceEvent, error) {
	return j.db.ListDeviceEvents(ctx, filter)
}

// RecentErrors returns error-grade and worse events for a site within the
// window (default 24 h).
func (j *Journal) RecentErrors(ctx context.Context, siteID string, window time.Duration) ([]*models.DeviceEvent, error) {
	if window <= 0 {
		window = defaultErrorWindow
	}

	start := nowUTC().Add(-window)

	return j.db.ListDeviceEvents(ctx, &models.EventFilter{
		SiteID:      siteID,
		Start:       &start,
		MinSeverity: models.SeverityError,
	})
}

// Acknowledge marks one event acknowledged and reports whether this call
// transitioned it.
func (j *Journal) Acknowledge(ctx context.Context, deviceID, eventType string, eventTime time.Time, user string) (bool, error) {
	return j.db.AcknowledgeEvent(ctx, deviceID, eventType, eventTime, user)
}

// AcknowledgeDevice acknowledges every open event for a device.
func (j *Journal) AcknowledgeDevice(ctx context.Context, deviceID, user string) (int64, error) {
	acked, err := j.db.AcknowledgeDeviceEvents(ctx, deviceID, user)
	if err != nil {
		return 0, err
	}

	if acked > 0 {
		j.logger.Info().
			Int64("acknowledged", acked).
			Str("device_id", deviceID).
			Str("user", user).
			Msg("Acknowledged device events")
	}

	return acked, nil
}

// AcknowledgeSite acknowledges every open event for a site.
func (j *Journal) AcknowledgeSite(ctx context.Context, siteID, user string) (int64, error) {
	acked, err := j.db.AcknowledgeSiteEvents(ctx, siteID, user)
	if err != nil {
		return 0, err
	}

	if acked > 0 {
		j.logger.Info().
			Int64("acknowledged", acked).
			Str("site_id", siteID).
			Str("user", user).
			Msg("Acknowledged site events")
	}

	return acked, nil
}

// CountsByTypeSeverity returns (type, severity) buckets for a site.
func (j *Journal) CountsByTypeSeverity(ctx context.Context, siteID string, start, end time.Time) ([]models.EventTypeCount, error) {
	return j.db.GetEventCounts(ctx, siteID, start, end)
}

// HourlyTimeline returns the per-hour severity histogram for a site.
func (j *Journal) HourlyTimeline(ctx context.Context, siteID string, start, end time.Time) ([]models.HourlyEventCount, error) {
	return j.db.GetHourlyEventTimeline(ctx, siteID, start, end)
}

// TopErrorDevices ranks a site's devices by error-grade event volume.
func (j *Journal) TopErrorDevices(ctx context.Context, siteID string, since time.Time, limit int) ([]models.DeviceErrorCount, error) {
	if limit <= 0 {
		limit = defaultTopDeviceLimit
	}

	return j.db.GetTopErrorDevices(ctx, siteID, since, limit)
}

// DeleteOlderThan removes aged events, optionally sparing unacknowledged
// ones.
func (j *Journal) DeleteOlderThan(ctx context.Context, before time.Time, keepUnacknowledged bool) (int64, error) {
	deleted, err := j.db.DeleteEventsOlderThan(ctx, before, keepUnacknowledged)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		j.logger.Info().
			Int64("deleted", deleted).
			Time("before", before).
			Bool("keep_unacknowledged", keepUnacknowledged).
			Msg("Deleted aged device events")
	}

	return deleted, nil
}

// Stats aggregates journal state for a device or site.
func (j *Journal) Stats(ctx context.Context, deviceID, siteID string) (*models.EventStats, error) {
	return j.db.GetEventStats(ctx, deviceID, siteID)
}

func normalizeEvent(event *models.DeviceEvent) error {
	if event == nil {
		return db.ErrDeviceEventNil
	}

	if event.DeviceID == "" {
		return db.ErrDeviceIDRequired
	}

	if event.EventType == "" {
		return db.ErrEventTypeRequired
	}

	if event.Time.IsZero() {
		event.Time = nowUTC()
	}

	if event.Severity == "" {
		event.Severity = models.SeverityInfo
	}

	return nil
}

func eventKey(event *models.DeviceEvent) string {
	return fmt.Sprintf("%d|%s|%s", event.Time.UnixNano(), event.DeviceID, event.EventType)
}
