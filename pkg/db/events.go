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

package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const defaultEventQueryLimit = 1000

const recentErrorWindow = 24 * time.Hour

const deviceEventColumns = `
	time,
	device_id,
	event_type,
	site_id,
	event_code,
	severity,
	message,
	details,
	acknowledged,
	acknowledged_at,
	acknowledged_by`

// insertDeviceEventSQL appends a journal entry. Replays of the same
// (time, device_id, event_type) triple are dropped, never rewritten.
const insertDeviceEventSQL = `
INSERT INTO device_events (
	time,
	device_id,
	event_type,
	site_id,
	event_code,
	severity,
	message,
	details
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8
)
ON CONFLICT (time, device_id, event_type) DO NOTHING`

const acknowledgeEventSQL = `
UPDATE device_events SET
	acknowledged = TRUE,
	acknowledged_at = $4,
	acknowledged_by = $5
WHERE time = $1 AND device_id = $2 AND event_type = $3 AND NOT acknowledged`

const acknowledgeDeviceEventsSQL = `
UPDATE device_events SET
	acknowledged = TRUE,
	acknowledged_at = $2,
	acknowledged_by = $3
WHERE device_id = $1 AND NOT acknowledged`

const acknowledgeSiteEventsSQL = `
UPDATE device_events SET
	acknowledged = TRUE,
	acknowledged_at = $2,
	acknowledged_by = $3
WHERE site_id = $1 AND NOT acknowledged`

const eventCountsSQL = `
SELECT event_type, severity, COUNT(*)
FROM device_events
WHERE site_id = $1 AND time BETWEEN $2 AND $3
GROUP BY event_type, severity
ORDER BY event_type, severity`

const hourlyEventTimelineSQL = `
SELECT hour, site_id, severity, event_count
FROM event_counts_hourly
WHERE site_id = $1 AND hour BETWEEN $2 AND $3
ORDER BY hour, severity`

const topErrorDevicesSQL = `
SELECT device_id, COUNT(*)
FROM device_events
WHERE site_id = $1
  AND time >= $2
  AND severity IN ('error', 'critical')
GROUP BY device_id
ORDER BY COUNT(*) DESC, device_id
LIMIT $3`

const eventStatsSQL = `
SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE NOT acknowledged),
	COUNT(*) FILTER (WHERE severity IN ('error', 'critical') AND time >= $3),
	MIN(time),
	MAX(time)
FROM device_events
WHERE ($1 = '' OR device_id = $1)
  AND ($2 = '' OR site_id = $2)`

// StoreDeviceEvents batch-appends journal entries, silently deduping replays.
func (db *DB) StoreDeviceEvents(ctx context.Context, events []*models.DeviceEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, event := range events {
		args, err := buildDeviceEventArgs(event)
		if err != nil {
			return err
		}

		batch.Queue(insertDeviceEventSQL, args...)
	}

	return db.sendWithRetry(ctx, batch, "device events")
}

// ListDeviceEvents returns journal entries matching the filter, newest first.
func (db *DB) ListDeviceEvents(ctx context.Context, filter *models.EventFilter) ([]*models.DeviceEvent, error) {
	where, args, err := buildEventFilterClause(filter)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventQueryLimit
	}

	args = append(args, limit)
	query := `SELECT` + deviceEventColumns + `
FROM device_events` + where + `
ORDER BY time DESC
LIMIT $` + fmt.Sprint(len(args))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w device events: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDeviceEvents(rows)
}

// AcknowledgeEvent acks one journal entry with user attribution. It reports
// whether this call performed the ack; concurrent acks see set-if-null
// semantics, so exactly one caller wins.
func (db *DB) AcknowledgeEvent(ctx context.Context, deviceID, eventType string, eventTime time.Time, user string) (bool, error) {
	tag, err := db.pool.Exec(ctx, acknowledgeEventSQL,
		eventTime.UTC(), deviceID, eventType, nowUTC(), user)
	if err != nil {
		return false, fmt.Errorf("acknowledge event: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// AcknowledgeDeviceEvents acks every open entry for a device and returns how
// many changed.
func (db *DB) AcknowledgeDeviceEvents(ctx context.Context, deviceID, user string) (int64, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, acknowledgeDeviceEventsSQL, deviceID, nowUTC(), user)
	if err != nil {
		return 0, fmt.Errorf("acknowledge device events for %s: %w", deviceID, err)
	}

	return tag.RowsAffected(), nil
}

// AcknowledgeSiteEvents acks every open entry across a site and returns how
// many changed.
func (db *DB) AcknowledgeSiteEvents(ctx context.Context, siteID, user string) (int64, error) {
	if siteID == "" {
		return 0, ErrEventScopeRequired
	}

	tag, err := db.pool.Exec(ctx, acknowledgeSiteEventsSQL, siteID, nowUTC(), user)
	if err != nil {
		return 0, fmt.Errorf("acknowledge site events for %s: %w", siteID, err)
	}

	return tag.RowsAffected(), nil
}

// GetEventCounts buckets a site's events by (type, severity) inside a window.
func (db *DB) GetEventCounts(ctx context.Context, siteID string, start, end time.Time) ([]models.EventTypeCount, error) {
	rows, err := db.pool.Query(ctx, eventCountsSQL, siteID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w event counts: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var counts []models.EventTypeCount

	for rows.Next() {
		var count models.EventTypeCount

		if err := rows.Scan(&count.EventType, &count.Severity, &count.Count); err != nil {
			return nil, fmt.Errorf("%w event count row: %w", ErrFailedToScan, err)
		}

		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w event counts: %w", ErrFailedToQuery, err)
	}

	return counts, nil
}

// GetHourlyEventTimeline reads the hourly rollup of a site's event volume.
func (db *DB) GetHourlyEventTimeline(ctx context.Context, siteID string, start, end time.Time) ([]models.HourlyEventCount, error) {
	rows, err := db.pool.Query(ctx, hourlyEventTimelineSQL, siteID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w hourly event timeline: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var timeline []models.HourlyEventCount

	for rows.Next() {
		var entry models.HourlyEventCount

		if err := rows.Scan(&entry.Hour, &entry.SiteID, &entry.Severity, &entry.Count); err != nil {
			return nil, fmt.Errorf("%w timeline row: %w", ErrFailedToScan, err)
		}

		timeline = append(timeline, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w hourly event timeline: %w", ErrFailedToQuery, err)
	}

	return timeline, nil
}

// GetTopErrorDevices ranks a site's devices by error-grade event volume
// since the given time.
func (db *DB) GetTopErrorDevices(ctx context.Context, siteID string, since time.Time, limit int) ([]models.DeviceErrorCount, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx, topErrorDevicesSQL, siteID, since.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w top error devices: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var counts []models.DeviceErrorCount

	for rows.Next() {
		var count models.DeviceErrorCount

		if err := rows.Scan(&count.DeviceID, &count.Count); err != nil {
			return nil, fmt.Errorf("%w top error device row: %w", ErrFailedToScan, err)
		}

		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w top error devices: %w", ErrFailedToQuery, err)
	}

	return counts, nil
}

// DeleteEventsOlderThan prunes journal entries older than the cutoff. With
// keepUnacknowledged set, entries nobody has acked survive the purge.
func (db *DB) DeleteEventsOlderThan(ctx context.Context, before time.Time, keepUnacknowledged bool) (int64, error) {
	tag, err := db.pool.Exec(ctx, `
DELETE FROM device_events
WHERE time < $1 AND (NOT $2 OR acknowledged)`, before.UTC(), keepUnacknowledged)
	if err != nil {
		return 0, fmt.Errorf("delete events older than %s: %w", before.UTC(), err)
	}

	return tag.RowsAffected(), nil
}

// GetEventStats aggregates journal state for a device, a site, or both.
func (db *DB) GetEventStats(ctx context.Context, deviceID, siteID string) (*models.EventStats, error) {
	if deviceID == "" && siteID == "" {
		return nil, ErrEventScopeRequired
	}

	var stats models.EventStats

	err := db.pool.QueryRow(ctx, eventStatsSQL, deviceID, siteID, nowUTC().Add(-recentErrorWindow)).Scan(
		&stats.Total,
		&stats.Unacknowledged,
		&stats.RecentErrors,
		&stats.FirstEventTime,
		&stats.LastEventTime,
	)
	if err != nil {
		return nil, fmt.Errorf("%w event stats: %w", ErrFailedToQuery, err)
	}

	return &stats, nil
}

func buildDeviceEventArgs(event *models.DeviceEvent) ([]interface{}, error) {
	if event == nil {
		return nil, ErrDeviceEventNil
	}

	if event.DeviceID == "" {
		return nil, ErrDeviceIDRequired
	}

	if event.EventType == "" {
		return nil, ErrEventTypeRequired
	}

	details, err := normalizeJSON(event.Details)
	if err != nil {
		return nil, fmt.Errorf("invalid details: %w", err)
	}

	severity := event.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}

	return []interface{}{
		sanitizeTimestamp(event.Time),
		event.DeviceID,
		event.EventType,
		event.SiteID,
		event.EventCode,
		string(severity),
		event.Message,
		details,
	}, nil
}

func buildEventFilterClause(filter *models.EventFilter) (string, []interface{}, error) {
	if filter == nil {
		return "", nil, ErrEventFilterNil
	}

	clauses := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	add := func(clause string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.DeviceID != "" {
		add("device_id = $%d", filter.DeviceID)
	}

	if filter.SiteID != "" {
		add("site_id = $%d", filter.SiteID)
	}

	if filter.Start != nil {
		add("time >= $%d", filter.Start.UTC())
	}

	if filter.End != nil {
		add("time <= $%d", filter.End.UTC())
	}

	if len(filter.EventTypes) > 0 {
		add("event_type = ANY($%d)", filter.EventTypes)
	}

	if len(filter.Severities) > 0 {
		severities := make([]string, 0, len(filter.Severities))
		for _, s := range filter.Severities {
			severities = append(severities, string(s))
		}

		add("severity = ANY($%d)", severities)
	}

	if filter.MinSeverity != "" {
		add("severity = ANY($%d)", severitiesAtLeast(filter.MinSeverity))
	}

	if filter.Acknowledged != nil {
		add("acknowledged = $%d", *filter.Acknowledged)
	}

	if len(clauses) == 0 {
		return "", args, nil
	}

	return "\nWHERE " + strings.Join(clauses, "\n  AND "), args, nil
}

// severitiesAtLeast expands a minimum severity into the explicit set SQL can
// match, since severities have no sortable order in the schema.
func severitiesAtLeast(min models.Severity) []string {
	all := []models.Severity{
		models.SeverityInfo,
		models.SeverityWarning,
		models.SeverityError,
		models.SeverityCritical,
	}

	eligible := make([]string, 0, len(all))

	for _, s := range all {
		if s.AtLeast(min) {
			eligible = append(eligible, string(s))
		}
	}

	return eligible
}

func scanDeviceEvent(row pgx.Row) (*models.DeviceEvent, error) {
	var (
		event   models.DeviceEvent
		details []byte
	)

	err := row.Scan(
		&event.Time,
		&event.DeviceID,
		&event.EventType,
		&event.SiteID,
		&event.EventCode,
		&event.Severity,
		&event.Message,
		&details,
		&event.Acknowledged,
		&event.AcknowledgedAt,
		&event.AcknowledgedBy,
	)
	if err != nil {
		return nil, err
	}

	if event.Details, err = decodeJSONMap(details); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}

	return &event, nil
}

func gatherDeviceEvents(rows pgx.Rows) ([]*models.DeviceEvent, error) {
	var events []*models.DeviceEvent

	for rows.Next() {
		event, err := scanDeviceEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w event row: %w", ErrFailedToScan, err)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w event rows: %w", ErrFailedToQuery, err)
	}

	return events, nil
}
