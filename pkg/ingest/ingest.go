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

// Package ingest validates telemetry points and writes them through the
// store's idempotent upsert. Every write is accounted for by an ingestion
// batch row that is finalized on all exit paths, including panics.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heliotrace/solarmesh/pkg/catalog"
	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

const (
	// maxFutureSkew is how far ahead of server time a point may claim to
	// be before it is rejected outright.
	maxFutureSkew = 60 * time.Second

	maxTagKeyLength    = 64
	maxTextValueLength = 256

	defaultQueryLimit   = 1000
	defaultBatchHistory = 50

	// finalizeTimeout bounds the batch-row update that runs even when the
	// caller's context is already dead.
	finalizeTimeout = 5 * time.Second
)

// ErrInvalidTimeRange is returned by range queries when start is not
// before end.
var ErrInvalidTimeRange = errors.New("start must be before end")

// nowUTC allows tests to override the timestamp source.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Ingestor implements Service on top of the store and the metric catalog.
type Ingestor struct {
	db      db.Service
	catalog catalog.Service
	logger  logger.Logger
}

// NewIngestor creates the ingestion service.
func NewIngestor(database db.Service, cat catalog.Service, log logger.Logger) *Ingestor {
	return &Ingestor{
		db:      database,
		catalog: cat,
		logger:  log,
	}
}

// IngestPoints wraps the points in a fresh batch attributed to source.
func (s *Ingestor) IngestPoints(ctx context.Context, source Source, points []*models.TelemetryPoint) (*models.IngestionBatch, error) {
	return s.IngestBatch(ctx, &models.IngestionBatch{
		SourceType: source.Type,
		SourceID:   source.ID,
	}, points)
}

// IngestBatch validates points and writes the survivors. The batch row is
// inserted with status processing before any point work and finalized on
// every exit path; a panic during processing finalizes the batch as failed
// and surfaces as an error. Empty input succeeds without touching the
// store.
func (s *Ingestor) IngestBatch(ctx context.Context, batch *models.IngestionBatch, points []*models.TelemetryPoint) (out *models.IngestionBatch, err error) {
	if batch == nil {
		return nil, db.ErrIngestionBatchNil
	}

	if batch.BatchID == "" {
		batch.BatchID = uuid.NewString()
	}

	started := nowUTC()
	batch.StartedAt = started
	batch.Status = models.BatchStatusProcessing
	batch.RecordCount = len(points)
	batch.DeviceCount = countDevices(points)

	if len(points) == 0 {
		batch.Status = models.BatchStatusSucceeded
		batch.CompletedAt = &started

		return batch, nil
	}

	if createErr := s.db.CreateIngestionBatch(ctx, batch); createErr != nil {
		return nil, fmt.Errorf("create ingestion batch: %w", createErr)
	}

	defer func() {
		if r := recover(); r != nil {
			batch.Status = models.BatchStatusFailed
			batch.ErrorDetail = fmt.Sprintf("panic: %v", r)
			out = batch
			err = fmt.Errorf("ingest batch %s: panic: %v", batch.BatchID, r)
		}

		completed := nowUTC()
		batch.CompletedAt = &completed
		batch.ProcessingTimeMs = completed.Sub(started).Milliseconds()

		finalizeCtx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
		defer cancel()

		if finalizeErr := s.db.FinalizeIngestionBatch(finalizeCtx, batch); finalizeErr != nil {
			s.logger.Error().
				Err(finalizeErr).
				Str("batch_id", batch.BatchID).
				Msg("Failed to finalize ingestion batch")
		}
	}()

	accepted, failed := s.preparePoints(ctx, batch, points)
	batch.RecordsFailed = failed

	if len(accepted) > 0 {
		inserted, storeErr := s.db.StoreTelemetryPoints(ctx, accepted)
		batch.RecordsInserted = inserted

		if storeErr != nil {
			batch.Status = models.BatchStatusFailed
			batch.ErrorDetail = storeErr.Error()

			return batch, fmt.Errorf("store telemetry points: %w", storeErr)
		}
	}

	switch {
	case failed == 0:
		batch.Status = models.BatchStatusSucceeded
	case len(accepted) == 0:
		batch.Status = models.BatchStatusFailed
		batch.ErrorDetail = "all records rejected"
	default:
		batch.Status = models.BatchStatusPartial
	}

	s.logger.Debug().
		Str("batch_id", batch.BatchID).
		Str("source_type", batch.SourceType).
		Int("records", batch.RecordCount).
		Int("inserted", batch.RecordsInserted).
		Int("failed", batch.RecordsFailed).
		Str("status", string(batch.Status)).
		Msg("Ingestion batch finished")

	return batch, nil
}

// preparePoints runs the validation pipeline in order: value shape, bounds,
// future-skew rejection, then tag/text truncation. Rejected points are
// dropped and counted; degraded points are kept with a lowered quality.
func (s *Ingestor) preparePoints(ctx context.Context, batch *models.IngestionBatch, points []*models.TelemetryPoint) ([]*models.TelemetryPoint, int) {
	now := nowUTC()
	horizon := now.Add(maxFutureSkew)
	definitions := make(map[string]*models.MetricDefinition)

	accepted := make([]*models.TelemetryPoint, 0, len(points))
	failed := 0

	for _, point := range points {
		if point == nil || point.DeviceID == "" || point.MetricName == "" {
			failed++
			continue
		}

		if point.ReceivedAt.IsZero() {
			point.ReceivedAt = now
		}

		if point.Time.IsZero() {
			point.Time = point.ReceivedAt
		}

		if point.Source == "" {
			point.Source = batch.SourceType
		}

		if point.Quality == "" {
			point.Quality = models.QualityGood
		}

		if point.ValueNumeric != nil {
			if v := *point.ValueNumeric; math.IsNaN(v) || math.IsInf(v, 0) {
				point.ValueNumeric = nil
				point.Quality = models.QualityMissing
			}
		}

		hasNumeric := point.ValueNumeric != nil
		hasText := point.ValueText != nil

		if hasNumeric == hasText && point.Quality != models.QualityMissing {
			point.Quality = models.QualityBad
		}

		def, known := s.lookupDefinition(ctx, definitions, point.MetricName)

		if known && def == nil && point.Quality == models.QualityGood {
			point.Quality = models.QualityUncertain
		}

		if def != nil {
			if point.Unit == "" {
				point.Unit = def.Unit
			}

			if hasNumeric && !def.InBounds(*point.ValueNumeric) && point.Quality == models.QualityGood {
				point.Quality = models.QualityUncertain
			}
		}

		if point.Time.After(horizon) {
			s.logger.Debug().
				Str("device_id", point.DeviceID).
				Str("metric_name", point.MetricName).
				Time("point_time", point.Time).
				Msg("Rejecting future-dated telemetry point")

			failed++

			continue
		}

		for key := range point.Tags {
			if len(key) > maxTagKeyLength {
				delete(point.Tags, key)
			}
		}

		if point.ValueText != nil && len(*point.ValueText) > maxTextValueLength {
			trimmed := (*point.ValueText)[:maxTextValueLength]
			point.ValueText = &trimmed
		}

		accepted = append(accepted, point)
	}

	return accepted, failed
}

// lookupDefinition memoizes catalog lookups for the duration of one batch.
// A nil definition with known=true means the metric is absent from the
// catalog; known=false means the catalog could not answer and the point's
// quality should be left alone.
func (s *Ingestor) lookupDefinition(ctx context.Context, memo map[string]*models.MetricDefinition, name string) (*models.MetricDefinition, bool) {
	if def, seen := memo[name]; seen {
		return def, true
	}

	def, err := s.catalog.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrMetricDefinitionNotFound) {
			memo[name] = nil
			return nil, true
		}

		s.logger.Warn().
			Err(err).
			Str("metric_name", name).
			Msg("Metric catalog lookup failed during ingest")

		return nil, false
	}

	memo[name] = def

	return def, true
}

// GetLatest returns the newest point per metric for a device.
func (s *Ingestor) GetLatest(ctx context.Context, deviceID string, metricNames []string) ([]*models.TelemetryPoint, error) {
	return s.db.GetLatestTelemetry(ctx, deviceID, metricNames)
}

// GetDeviceRange returns raw points for one device in [start, end).
func (s *Ingestor) GetDeviceRange(ctx context.Context, deviceID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	if limit <= 0 {
		limit = defaultQueryLimit
	}

	return s.db.GetDeviceTelemetryRange(ctx, deviceID, metricNames, start, end, limit)
}

// GetSiteRange returns raw points for every device on a site in [start, end).
func (s *Ingestor) GetSiteRange(ctx context.Context, siteID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	if limit <= 0 {
		limit = defaultQueryLimit
	}

	return s.db.GetSiteTelemetryRange(ctx, siteID, metricNames, start, end, limit)
}

// GetBucketAggregates returns rollup rows at the requested resolution.
func (s *Ingestor) GetBucketAggregates(ctx context.Context, deviceID, metricName string, start, end time.Time, bucket models.AggregateBucket) ([]*models.TelemetryAggregate, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	return s.db.GetBucketAggregates(ctx, deviceID, metricName, start, end, bucket)
}

// DeleteOlderThan removes raw points before the cutoff, optionally scoped
// to one device.
func (s *Ingestor) DeleteOlderThan(ctx context.Context, before time.Time, deviceID string) (int64, error) {
	deleted, err := s.db.DeleteTelemetryOlderThan(ctx, before, deviceID)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info().
			Int64("deleted", deleted).
			Time("before", before).
			Str("device_id", deviceID).
			Msg("Deleted aged telemetry")
	}

	return deleted, nil
}

// MarkProcessed flags a device's points before the cutoff as consumed by
// downstream processing.
func (s *Ingestor) MarkProcessed(ctx context.Context, deviceID string, before time.Time) (int64, error) {
	return s.db.MarkTelemetryProcessed(ctx, deviceID, before)
}

// GetBatch returns one ingestion batch row.
func (s *Ingestor) GetBatch(ctx context.Context, batchID string) (*models.IngestionBatch, error) {
	return s.db.GetIngestionBatch(ctx, batchID)
}

// RecentBatches returns the newest batch rows for operator diagnostics.
func (s *Ingestor) RecentBatches(ctx context.Context, limit int) ([]*models.IngestionBatch, error) {
	if limit <= 0 {
		limit = defaultBatchHistory
	}

	return s.db.ListRecentIngestionBatches(ctx, limit)
}

func countDevices(points []*models.TelemetryPoint) int {
	seen := make(map[string]bool, len(points))

	for _, point := range points {
		if point != nil && point.DeviceID != "" {
			seen[point.DeviceID] = true
		}
	}

	return len(seen)
}

// SnapshotPoints flattens an adapter snapshot into storable points, one per
// populated metric field. Extra keys are not flattened; they stay with the
// snapshot only.
func SnapshotPoints(device *models.Device, snapshot *models.Telemetry) []*models.TelemetryPoint {
	if device == nil || snapshot == nil || snapshot.Empty() {
		return nil
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"pv_power_w", snapshot.PVPowerW},
		{"grid_power_w", snapshot.GridPowerW},
		{"load_power_w", snapshot.LoadPowerW},
		{"battery_power_w", snapshot.BatteryPowerW},
		{"battery_soc", snapshot.BatterySOC},
		{"battery_voltage_v", snapshot.BatteryVoltageV},
		{"battery_current_a", snapshot.BatteryCurrentA},
		{"battery_temp_c", snapshot.BatteryTempC},
		{"ac_power_w", snapshot.ACPowerW},
		{"dc_power_w", snapshot.DCPowerW},
		{"voltage_v", snapshot.VoltageV},
		{"current_a", snapshot.CurrentA},
		{"frequency_hz", snapshot.FrequencyHz},
		{"power_factor", snapshot.PowerFactor},
		{"today_energy_kwh", snapshot.TodayEnergyKWh},
		{"total_energy_kwh", snapshot.TotalEnergyKWh},
		{"temperature_c", snapshot.TemperatureC},
		{"irradiance_w_m2", snapshot.IrradianceWM2},
	}

	points := make([]*models.TelemetryPoint, 0, len(fields))

	for _, field := range fields {
		if field.value == nil {
			continue
		}

		v := *field.value

		points = append(points, &models.TelemetryPoint{
			Time:         snapshot.Timestamp,
			DeviceID:     device.ID,
			SiteID:       device.SiteID,
			MetricName:   field.name,
			ValueNumeric: &v,
			Quality:      models.QualityGood,
		})
	}

	return points
}
