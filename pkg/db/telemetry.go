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
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const defaultTelemetryQueryLimit = 10000

const telemetryColumns = `
	time,
	device_id,
	site_id,
	metric_name,
	value_numeric,
	value_text,
	quality,
	unit,
	source,
	tags,
	received_at`

// upsertTelemetryPointSQL writes one point idempotently on the
// (time, device_id, metric_name) key. Re-writes are last-writer-wins on the
// value, but a point that already holds quality good is never degraded to
// bad. The RETURNING clause reports whether the row is a first write
// (xmax = 0 only for fresh inserts).
const upsertTelemetryPointSQL = `
INSERT INTO telemetry_raw (` + telemetryColumns + `
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11
)
ON CONFLICT (time, device_id, metric_name) DO UPDATE SET
	site_id = EXCLUDED.site_id,
	value_numeric = EXCLUDED.value_numeric,
	value_text = EXCLUDED.value_text,
	quality = CASE
		WHEN telemetry_raw.quality = 'good' AND EXCLUDED.quality = 'bad'
		THEN telemetry_raw.quality
		ELSE EXCLUDED.quality
	END,
	unit = EXCLUDED.unit,
	source = EXCLUDED.source,
	tags = EXCLUDED.tags,
	received_at = EXCLUDED.received_at
RETURNING (xmax = 0) AS inserted`

const markTelemetryProcessedSQL = `
UPDATE telemetry_raw SET
	processed = TRUE
WHERE device_id = $1 AND time < $2 AND NOT processed`

// StoreTelemetryPoints batch-upserts points and returns how many were first
// writes. Re-ingesting the same points stores the same state and reports
// zero inserts.
func (db *DB) StoreTelemetryPoints(ctx context.Context, points []*models.TelemetryPoint) (inserted int, err error) {
	if len(points) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}

	for _, point := range points {
		args, argErr := buildTelemetryPointArgs(point)
		if argErr != nil {
			return 0, argErr
		}

		batch.Queue(upsertTelemetryPointSQL, args...)
	}

	br := db.pool.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("timescale telemetry batch close: %w", closeErr)
		}
	}()

	for i := 0; i < batch.Len(); i++ {
		var fresh bool

		if err = br.QueryRow().Scan(&fresh); err != nil {
			return inserted, fmt.Errorf("timescale telemetry upsert (command %d): %w", i, err)
		}

		if fresh {
			inserted++
		}
	}

	return inserted, nil
}

// GetLatestTelemetry returns the newest stored point per metric for a device.
// An empty metricNames slice means every metric the device has reported.
func (db *DB) GetLatestTelemetry(ctx context.Context, deviceID string, metricNames []string) ([]*models.TelemetryPoint, error) {
	rows, err := db.pool.Query(ctx, `SELECT DISTINCT ON (metric_name)`+telemetryColumns+`
FROM telemetry_raw
WHERE device_id = $1
  AND ($2::text[] IS NULL OR metric_name = ANY($2))
ORDER BY metric_name, time DESC`, deviceID, metricNamesFilter(metricNames))
	if err != nil {
		return nil, fmt.Errorf("%w latest telemetry: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherTelemetryPoints(rows)
}

// GetDeviceTelemetryRange returns raw points for a device inside [start, end].
func (db *DB) GetDeviceTelemetryRange(
	ctx context.Context,
	deviceID string,
	metricNames []string,
	start, end time.Time,
	limit int,
) ([]*models.TelemetryPoint, error) {
	if limit <= 0 {
		limit = defaultTelemetryQueryLimit
	}

	rows, err := db.pool.Query(ctx, `SELECT`+telemetryColumns+`
FROM telemetry_raw
WHERE device_id = $1
  AND ($2::text[] IS NULL OR metric_name = ANY($2))
  AND time BETWEEN $3 AND $4
ORDER BY time DESC
LIMIT $5`, deviceID, metricNamesFilter(metricNames), start.UTC(), end.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w device telemetry range: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherTelemetryPoints(rows)
}

// GetSiteTelemetryRange returns raw points across a whole site inside
// [start, end].
func (db *DB) GetSiteTelemetryRange(
	ctx context.Context,
	siteID string,
	metricNames []string,
	start, end time.Time,
	limit int,
) ([]*models.TelemetryPoint, error) {
	if limit <= 0 {
		limit = defaultTelemetryQueryLimit
	}

	rows, err := db.pool.Query(ctx, `SELECT`+telemetryColumns+`
FROM telemetry_raw
WHERE site_id = $1
  AND ($2::text[] IS NULL OR metric_name = ANY($2))
  AND time BETWEEN $3 AND $4
ORDER BY time DESC
LIMIT $5`, siteID, metricNamesFilter(metricNames), start.UTC(), end.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w site telemetry range: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherTelemetryPoints(rows)
}

// GetBucketAggregates reads one continuous aggregate for a device metric.
func (db *DB) GetBucketAggregates(
	ctx context.Context,
	deviceID, metricName string,
	start, end time.Time,
	bucket models.AggregateBucket,
) ([]*models.TelemetryAggregate, error) {
	view, err := aggViewForBucket(bucket)
	if err != nil {
		return nil, err
	}

	query := `
SELECT
	bucket,
	device_id,
	site_id,
	metric_name,
	avg_value,
	min_value,
	max_value,
	first_value,
	last_value,
	sample_count,
	quality_percent
FROM ` + view + `
WHERE device_id = $1 AND metric_name = $2 AND bucket BETWEEN $3 AND $4
ORDER BY bucket`

	rows, err := db.pool.Query(ctx, query, deviceID, metricName, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w bucket aggregates: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var aggs []*models.TelemetryAggregate

	for rows.Next() {
		var agg models.TelemetryAggregate

		err := rows.Scan(
			&agg.BucketStart,
			&agg.DeviceID,
			&agg.SiteID,
			&agg.MetricName,
			&agg.Avg,
			&agg.Min,
			&agg.Max,
			&agg.First,
			&agg.Last,
			&agg.SampleCount,
			&agg.QualityPercent,
		)
		if err != nil {
			return nil, fmt.Errorf("%w aggregate row: %w", ErrFailedToScan, err)
		}

		aggs = append(aggs, &agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w bucket aggregates: %w", ErrFailedToQuery, err)
	}

	return aggs, nil
}

// DeleteTelemetryOlderThan removes raw points older than the cutoff,
// optionally for a single device; it returns the rows removed. The
// hypertable retention policy handles routine aging, this handles operator
// requests.
func (db *DB) DeleteTelemetryOlderThan(ctx context.Context, before time.Time, deviceID string) (int64, error) {
	tag, err := db.pool.Exec(ctx, `
DELETE FROM telemetry_raw
WHERE time < $1 AND ($2 = '' OR device_id = $2)`, before.UTC(), deviceID)
	if err != nil {
		return 0, fmt.Errorf("delete telemetry older than %s: %w", before.UTC(), err)
	}

	return tag.RowsAffected(), nil
}

// MarkTelemetryProcessed flags a device's points before the cutoff as
// consumed by downstream export and returns how many changed.
func (db *DB) MarkTelemetryProcessed(ctx context.Context, deviceID string, before time.Time) (int64, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, markTelemetryProcessedSQL, deviceID, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("mark telemetry processed for %s: %w", deviceID, err)
	}

	return tag.RowsAffected(), nil
}

func aggViewForBucket(bucket models.AggregateBucket) (string, error) {
	switch bucket {
	case models.Bucket5Min:
		return "telemetry_5min", nil
	case models.BucketHourly:
		return "telemetry_hourly", nil
	case models.BucketDaily:
		return "telemetry_daily", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAggBucket, bucket)
	}
}

// metricNamesFilter maps an empty metric list to SQL NULL so queries can use
// a single "no constraint" shape.
func metricNamesFilter(metricNames []string) interface{} {
	if len(metricNames) == 0 {
		return nil
	}

	return metricNames
}

func buildTelemetryPointArgs(point *models.TelemetryPoint) ([]interface{}, error) {
	if point == nil {
		return nil, ErrTelemetryPointNil
	}

	if point.DeviceID == "" {
		return nil, ErrDeviceIDRequired
	}

	tags, err := normalizeStringMap(point.Tags)
	if err != nil {
		return nil, fmt.Errorf("invalid tags: %w", err)
	}

	quality := point.Quality
	if quality == "" {
		quality = models.QualityGood
	}

	return []interface{}{
		sanitizeTimestamp(point.Time),
		point.DeviceID,
		point.SiteID,
		point.MetricName,
		point.ValueNumeric,
		point.ValueText,
		string(quality),
		point.Unit,
		point.Source,
		tags,
		sanitizeTimestamp(point.ReceivedAt),
	}, nil
}

func scanTelemetryPoint(row pgx.Row) (*models.TelemetryPoint, error) {
	var (
		point models.TelemetryPoint
		tags  []byte
	)

	err := row.Scan(
		&point.Time,
		&point.DeviceID,
		&point.SiteID,
		&point.MetricName,
		&point.ValueNumeric,
		&point.ValueText,
		&point.Quality,
		&point.Unit,
		&point.Source,
		&tags,
		&point.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}

	if point.Tags, err = decodeStringMap(tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	return &point, nil
}

func gatherTelemetryPoints(rows pgx.Rows) ([]*models.TelemetryPoint, error) {
	var points []*models.TelemetryPoint

	for rows.Next() {
		point, err := scanTelemetryPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("%w telemetry row: %w", ErrFailedToScan, err)
		}

		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w telemetry rows: %w", ErrFailedToQuery, err)
	}

	return points, nil
}
