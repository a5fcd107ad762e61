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

//go:generate mockgen -destination=mock_db.go -package=db github.com/heliotrace/solarmesh/pkg/db Service

package db

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Service defines the storage operations of the telemetry plane. All
// timestamps are stored and returned in UTC.
type Service interface {
	// Device registry operations.

	CreateDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, id string) (*models.Device, error)
	GetDeviceBySerial(ctx context.Context, serial string) (*models.Device, error)
	ListDevicesBySite(ctx context.Context, siteID string) ([]*models.Device, error)
	ListDevicesByOrg(ctx context.Context, orgID string) ([]*models.Device, error)
	UpdateDevice(ctx context.Context, device *models.Device) error
	DecommissionDevice(ctx context.Context, id string) error
	ListConnectedDevices(ctx context.Context) ([]*models.Device, error)
	ListDevicesDueForPolling(ctx context.Context, limit int) ([]*models.Device, error)
	UpdateConnectionStatus(ctx context.Context, id string, status models.ConnectionStatus) error
	UpdateDevicePollTime(ctx context.Context, id string, polledAt, nextPollAt time.Time) error
	MarkDevicesSynced(ctx context.Context, ids []string) error
	ListUnsyncedDevices(ctx context.Context) ([]*models.Device, error)
	GetConnectionStats(ctx context.Context) (*models.ConnectionStats, error)
	GetDeviceKindCounts(ctx context.Context) ([]models.DeviceKindCount, error)
	SetDeviceToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	ClearDeviceToken(ctx context.Context, id string) error
	UpsertDeviceFromSync(ctx context.Context, device *models.Device) error

	// Metric catalog operations.

	UpsertMetricDefinition(ctx context.Context, def *models.MetricDefinition) error
	GetMetricDefinition(ctx context.Context, name string) (*models.MetricDefinition, error)
	ListMetricDefinitions(ctx context.Context) ([]*models.MetricDefinition, error)

	// Telemetry operations.

	StoreTelemetryPoints(ctx context.Context, points []*models.TelemetryPoint) (int, error)
	GetLatestTelemetry(ctx context.Context, deviceID string, metricNames []string) ([]*models.TelemetryPoint, error)
	GetDeviceTelemetryRange(ctx context.Context, deviceID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error)
	GetSiteTelemetryRange(ctx context.Context, siteID string, metricNames []string, start, end time.Time, limit int) ([]*models.TelemetryPoint, error)
	GetBucketAggregates(ctx context.Context, deviceID, metricName string, start, end time.Time, bucket models.AggregateBucket) ([]*models.TelemetryAggregate, error)
	DeleteTelemetryOlderThan(ctx context.Context, before time.Time, deviceID string) (int64, error)
	MarkTelemetryProcessed(ctx context.Context, deviceID string, before time.Time) (int64, error)

	// Ingestion batch operations.

	CreateIngestionBatch(ctx context.Context, batch *models.IngestionBatch) error
	FinalizeIngestionBatch(ctx context.Context, batch *models.IngestionBatch) error
	GetIngestionBatch(ctx context.Context, batchID string) (*models.IngestionBatch, error)
	ListRecentIngestionBatches(ctx context.Context, limit int) ([]*models.IngestionBatch, error)
	DeleteIngestionBatchesOlderThan(ctx context.Context, before time.Time) (int64, error)

	// Event journal operations.

	StoreDeviceEvents(ctx context.Context, events []*models.DeviceEvent) error
	ListDeviceEvents(ctx context.Context, filter *models.EventFilter) ([]*models.DeviceEvent, error)
	AcknowledgeEvent(ctx context.Context, deviceID, eventType string, eventTime time.Time, user string) (bool, error)
	AcknowledgeDeviceEvents(ctx context.Context, deviceID, user string) (int64, error)
	AcknowledgeSiteEvents(ctx context.Context, siteID, user string) (int64, error)
	GetEventCounts(ctx context.Context, siteID string, start, end time.Time) ([]models.EventTypeCount, error)
	GetHourlyEventTimeline(ctx context.Context, siteID string, start, end time.Time) ([]models.HourlyEventCount, error)
	GetTopErrorDevices(ctx context.Context, siteID string, since time.Time, limit int) ([]models.DeviceErrorCount, error)
	DeleteEventsOlderThan(ctx context.Context, before time.Time, keepUnacknowledged bool) (int64, error)
	GetEventStats(ctx context.Context, deviceID, siteID string) (*models.EventStats, error)

	// Command queue operations.

	CreateCommand(ctx context.Context, cmd *models.DeviceCommand) error
	GetCommand(ctx context.Context, id string) (*models.DeviceCommand, error)
	ListCommandsByDevice(ctx context.Context, deviceID string, limit int) ([]*models.DeviceCommand, error)
	ListCommandsByStatus(ctx context.Context, status models.CommandStatus, limit int) ([]*models.DeviceCommand, error)
	ClaimNextCommand(ctx context.Context, deviceID string) (*models.DeviceCommand, error)
	MarkCommandSent(ctx context.Context, id string) (bool, error)
	MarkCommandAcknowledged(ctx context.Context, id string) (bool, error)
	CompleteCommand(ctx context.Context, id string, result map[string]interface{}) (bool, error)
	FailCommand(ctx context.Context, id, errorCode, errorMessage string, result map[string]interface{}) (bool, error)
	RetryCommand(ctx context.Context, id string) (bool, error)
	RetryFailedCommands(ctx context.Context, deviceID string) (int64, error)
	CancelCommand(ctx context.Context, id string) (bool, error)
	ExpireCommands(ctx context.Context) (int64, error)

	Close()
}
