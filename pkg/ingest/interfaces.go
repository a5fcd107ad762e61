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

package ingest

//go:generate mockgen -destination=mock_ingest.go -package=ingest github.com/heliotrace/solarmesh/pkg/ingest Service

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Source identifies the producer of a batch of points.
type Source struct {
	Type string
	ID   string
}

// Well-known source types.
const (
	SourceTypePoller = "poller"
	SourceTypeMQTT   = "mqtt"
	SourceTypeAPI    = "api"
)

// Service validates and stores telemetry and answers time-series queries.
type Service interface {
	// IngestPoints runs the validation pipeline over points and writes the
	// survivors under a new tracked batch.
	IngestPoints(ctx context.Context, source Source, points []*models.TelemetryPoint) (*models.IngestionBatch, error)

	// IngestBatch is IngestPoints with a caller-shaped batch row, for
	// callers that pre-assign batch ids or carry source metadata.
	IngestBatch(ctx context.Context, batch *models.IngestionBatch, points []*models.TelemetryPoint) (*models.IngestionBatch, error)

	GetLatest(ctx context.Context, deviceID string, metricNames []string) ([]*models.TelemetryPoint, error)
	GetDeviceRange(ctx context.Context, deviceID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error)
	GetSiteRange(ctx context.Context, siteID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error)
	GetBucketAggregates(ctx context.Context, deviceID, metricName string, start, end time.Time, bucket models.AggregateBucket) ([]*models.TelemetryAggregate, error)

	DeleteOlderThan(ctx context.Context, before time.Time, deviceID string) (int64, error)
	MarkProcessed(ctx context.Context, deviceID string, before time.Time) (int64, error)

	GetBatch(ctx context.Context, batchID string) (*models.IngestionBatch, error)
	RecentBatches(ctx context.Context, limit int) ([]*models.IngestionBatch, error)
}
