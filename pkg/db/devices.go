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
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const deviceColumns = `
	id,
	serial_number,
	organization_id,
	site_id,
	device_type,
	protocol,
	connection_config,
	connection_status,
	last_connected_at,
	last_disconnected_at,
	reconnect_count,
	polling_interval_seconds,
	last_polled_at,
	next_poll_at,
	token_hash,
	token_expires_at,
	metadata,
	decommissioned,
	created_at,
	updated_at,
	synced_at`

const insertDeviceSQL = `
INSERT INTO device_registry (` + deviceColumns + `
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21
)`

const upsertDeviceFromSyncSQL = `
INSERT INTO device_registry (` + deviceColumns + `
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21
)
ON CONFLICT (id) DO UPDATE SET
	serial_number = EXCLUDED.serial_number,
	organization_id = EXCLUDED.organization_id,
	site_id = EXCLUDED.site_id,
	device_type = EXCLUDED.device_type,
	protocol = EXCLUDED.protocol,
	connection_config = EXCLUDED.connection_config,
	polling_interval_seconds = EXCLUDED.polling_interval_seconds,
	metadata = EXCLUDED.metadata,
	decommissioned = EXCLUDED.decommissioned,
	updated_at = EXCLUDED.updated_at,
	synced_at = EXCLUDED.synced_at`

const updateDeviceSQL = `
UPDATE device_registry SET
	serial_number = $2,
	organization_id = $3,
	site_id = $4,
	device_type = $5,
	protocol = $6,
	connection_config = $7,
	polling_interval_seconds = $8,
	metadata = $9,
	decommissioned = $10,
	updated_at = $11
WHERE id = $1`

const decommissionDeviceSQL = `
UPDATE device_registry SET
	decommissioned = TRUE,
	updated_at = $2
WHERE id = $1`

// updateConnectionStatusSQL stamps transition timestamps in a single
// statement so concurrent updates cannot interleave. Re-applying the current
// status leaves every stamp untouched; a reconnect (connected after a prior
// connection) bumps reconnect_count.
const updateConnectionStatusSQL = `
UPDATE device_registry SET
	reconnect_count = CASE
		WHEN $2 = 'connected' AND connection_status <> 'connected' AND last_connected_at IS NOT NULL
		THEN reconnect_count + 1
		ELSE reconnect_count
	END,
	last_connected_at = CASE
		WHEN $2 = 'connected' AND connection_status <> 'connected' THEN $3
		ELSE last_connected_at
	END,
	last_disconnected_at = CASE
		WHEN $2 <> 'connected' AND connection_status = 'connected' THEN $3
		ELSE last_disconnected_at
	END,
	connection_status = $2,
	updated_at = $3
WHERE id = $1`

const updateDevicePollTimeSQL = `
UPDATE device_registry SET
	last_polled_at = $2,
	next_poll_at = $3,
	updated_at = $2
WHERE id = $1`

const markDevicesSyncedSQL = `
UPDATE device_registry SET
	synced_at = $2
WHERE id = ANY($1)`

const setDeviceTokenSQL = `
UPDATE device_registry SET
	token_hash = $2,
	token_expires_at = $3,
	updated_at = $4
WHERE id = $1`

const clearDeviceTokenSQL = `
UPDATE device_registry SET
	token_hash = '',
	token_expires_at = NULL,
	updated_at = $2
WHERE id = $1`

const connectionStatsSQL = `
SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE connection_status = 'connected'),
	COUNT(*) FILTER (WHERE connection_status = 'disconnected'),
	COUNT(*) FILTER (WHERE connection_status = 'error'),
	COUNT(*) FILTER (WHERE connection_status = 'maintenance'),
	COUNT(*) FILTER (WHERE connection_status = 'unknown')
FROM device_registry
WHERE NOT decommissioned`

const deviceKindCountsSQL = `
SELECT device_type, COUNT(*)
FROM device_registry
WHERE NOT decommissioned
GROUP BY device_type
ORDER BY device_type`

// CreateDevice inserts a new registry row. The serial number must be unique
// across the fleet.
func (db *DB) CreateDevice(ctx context.Context, device *models.Device) error {
	args, err := buildDeviceArgs(device)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(insertDeviceSQL, args...)

	return db.sendWithRetry(ctx, batch, "device create")
}

// GetDevice fetches one registry row by device id.
func (db *DB) GetDevice(ctx context.Context, id string) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, `SELECT`+deviceColumns+` FROM device_registry WHERE id = $1`, id)

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w device %s: %w", ErrFailedToQuery, id, err)
	}

	return device, nil
}

// GetDeviceBySerial fetches one registry row by serial number.
func (db *DB) GetDeviceBySerial(ctx context.Context, serial string) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, `SELECT`+deviceColumns+` FROM device_registry WHERE serial_number = $1`, serial)

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w device serial %s: %w", ErrFailedToQuery, serial, err)
	}

	return device, nil
}

// ListDevicesBySite returns every non-decommissioned device at a site.
func (db *DB) ListDevicesBySite(ctx context.Context, siteID string) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+deviceColumns+`
FROM device_registry
WHERE site_id = $1 AND NOT decommissioned
ORDER BY serial_number`, siteID)
	if err != nil {
		return nil, fmt.Errorf("%w devices by site: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDevices(rows)
}

// ListDevicesByOrg returns every non-decommissioned device in an organization.
func (db *DB) ListDevicesByOrg(ctx context.Context, orgID string) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+deviceColumns+`
FROM device_registry
WHERE organization_id = $1 AND NOT decommissioned
ORDER BY site_id, serial_number`, orgID)
	if err != nil {
		return nil, fmt.Errorf("%w devices by org: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDevices(rows)
}

// UpdateDevice rewrites the control-plane-owned columns of a registry row.
// Connection, polling, and token state belong to the telemetry plane and are
// updated through their dedicated operations.
func (db *DB) UpdateDevice(ctx context.Context, device *models.Device) error {
	if device == nil {
		return ErrDeviceNil
	}

	if err := device.Validate(); err != nil {
		return err
	}

	connectionConfig, err := normalizeJSON(device.ConnectionConfig)
	if err != nil {
		return fmt.Errorf("invalid connection config: %w", err)
	}

	metadata, err := normalizeJSON(device.Metadata)
	if err != nil {
		return fmt.Errorf("invalid metadata: %w", err)
	}

	tag, err := db.pool.Exec(ctx, updateDeviceSQL,
		device.ID,
		device.SerialNumber,
		device.OrganizationID,
		device.SiteID,
		string(device.Kind),
		string(device.Protocol),
		connectionConfig,
		device.PollingIntervalSeconds,
		metadata,
		device.Decommissioned,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("update device %s: %w", device.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// DecommissionDevice marks a device logically deleted. The row survives so
// telemetry retention can still resolve it.
func (db *DB) DecommissionDevice(ctx context.Context, id string) error {
	if id == "" {
		return ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, decommissionDeviceSQL, id, nowUTC())
	if err != nil {
		return fmt.Errorf("decommission device %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// ListConnectedDevices returns devices currently reporting connected.
func (db *DB) ListConnectedDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+deviceColumns+`
FROM device_registry
WHERE connection_status = 'connected' AND NOT decommissioned
ORDER BY serial_number`)
	if err != nil {
		return nil, fmt.Errorf("%w connected devices: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDevices(rows)
}

// ListDevicesDueForPolling returns devices whose next poll is due, oldest
// first. Devices that have never been polled sort ahead of everything else.
func (db *DB) ListDevicesDueForPolling(ctx context.Context, limit int) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+deviceColumns+`
FROM device_registry
WHERE NOT decommissioned
  AND (next_poll_at IS NULL OR next_poll_at <= $1)
ORDER BY next_poll_at ASC NULLS FIRST
LIMIT $2`, nowUTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w devices due for polling: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDevices(rows)
}

// UpdateConnectionStatus applies a transport state transition. The update is
// idempotent: re-reporting the current status changes nothing but updated_at.
func (db *DB) UpdateConnectionStatus(ctx context.Context, id string, status models.ConnectionStatus) error {
	if id == "" {
		return ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, updateConnectionStatusSQL, id, string(status), nowUTC())
	if err != nil {
		return fmt.Errorf("update connection status for %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// UpdateDevicePollTime records a completed poll and schedules the next one.
func (db *DB) UpdateDevicePollTime(ctx context.Context, id string, polledAt, nextPollAt time.Time) error {
	if id == "" {
		return ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, updateDevicePollTimeSQL, id, sanitizeTimestamp(polledAt), nextPollAt.UTC())
	if err != nil {
		return fmt.Errorf("update poll time for %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// MarkDevicesSynced stamps synced_at on the given devices after a successful
// control plane round trip.
func (db *DB) MarkDevicesSynced(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := db.pool.Exec(ctx, markDevicesSyncedSQL, ids, nowUTC()); err != nil {
		return fmt.Errorf("mark devices synced: %w", err)
	}

	return nil
}

// ListUnsyncedDevices returns devices changed since their last control plane
// sync, including rows never synced at all.
func (db *DB) ListUnsyncedDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+deviceColumns+`
FROM device_registry
WHERE synced_at IS NULL OR synced_at < updated_at
ORDER BY updated_at`)
	if err != nil {
		return nil, fmt.Errorf("%w unsynced devices: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherDevices(rows)
}

// GetConnectionStats summarizes transport state across the fleet.
func (db *DB) GetConnectionStats(ctx context.Context) (*models.ConnectionStats, error) {
	var stats models.ConnectionStats

	err := db.pool.QueryRow(ctx, connectionStatsSQL).Scan(
		&stats.Total,
		&stats.Connected,
		&stats.Disconnected,
		&stats.Error,
		&stats.Maintenance,
		&stats.Unknown,
	)
	if err != nil {
		return nil, fmt.Errorf("%w connection stats: %w", ErrFailedToQuery, err)
	}

	return &stats, nil
}

// GetDeviceKindCounts returns how many registered devices carry each kind.
func (db *DB) GetDeviceKindCounts(ctx context.Context) ([]models.DeviceKindCount, error) {
	rows, err := db.pool.Query(ctx, deviceKindCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("%w device kind counts: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var counts []models.DeviceKindCount

	for rows.Next() {
		var count models.DeviceKindCount

		if err := rows.Scan(&count.Kind, &count.Count); err != nil {
			return nil, fmt.Errorf("%w device kind count: %w", ErrFailedToScan, err)
		}

		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w device kind counts: %w", ErrFailedToQuery, err)
	}

	return counts, nil
}

// SetDeviceToken stores a freshly generated token hash and its expiry.
func (db *DB) SetDeviceToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	if id == "" {
		return ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, setDeviceTokenSQL, id, tokenHash, expiresAt.UTC(), nowUTC())
	if err != nil {
		return fmt.Errorf("set token for %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// ClearDeviceToken revokes whatever token the device currently holds.
func (db *DB) ClearDeviceToken(ctx context.Context, id string) error {
	if id == "" {
		return ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, clearDeviceTokenSQL, id, nowUTC())
	if err != nil {
		return fmt.Errorf("clear token for %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// UpsertDeviceFromSync applies a control plane record by device id. Only the
// control-plane-owned columns change on conflict; connection, polling, and
// token state stay local.
func (db *DB) UpsertDeviceFromSync(ctx context.Context, device *models.Device) error {
	args, err := buildDeviceArgs(device)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	batch.Queue(upsertDeviceFromSyncSQL, args...)

	return db.sendWithRetry(ctx, batch, "device sync")
}

func buildDeviceArgs(device *models.Device) ([]interface{}, error) {
	if device == nil {
		return nil, ErrDeviceNil
	}

	if err := device.Validate(); err != nil {
		return nil, err
	}

	connectionConfig, err := normalizeJSON(device.ConnectionConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid connection config: %w", err)
	}

	metadata, err := normalizeJSON(device.Metadata)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}

	status := device.ConnectionStatus
	if status == "" {
		status = models.ConnectionStatusUnknown
	}

	return []interface{}{
		device.ID,
		device.SerialNumber,
		device.OrganizationID,
		device.SiteID,
		string(device.Kind),
		string(device.Protocol),
		connectionConfig,
		string(status),
		toNullableTime(device.LastConnectedAt),
		toNullableTime(device.LastDisconnectedAt),
		device.ReconnectCount,
		device.PollingIntervalSeconds,
		toNullableTime(device.LastPolledAt),
		toNullableTime(device.NextPollAt),
		device.TokenHash,
		toNullableTime(device.TokenExpiresAt),
		metadata,
		device.Decommissioned,
		sanitizeTimestamp(device.CreatedAt),
		sanitizeTimestamp(device.UpdatedAt),
		toNullableTime(device.SyncedAt),
	}, nil
}

func scanDevice(row pgx.Row) (*models.Device, error) {
	var (
		device           models.Device
		connectionConfig []byte
		metadata         []byte
	)

	err := row.Scan(
		&device.ID,
		&device.SerialNumber,
		&device.OrganizationID,
		&device.SiteID,
		&device.Kind,
		&device.Protocol,
		&connectionConfig,
		&device.ConnectionStatus,
		&device.LastConnectedAt,
		&device.LastDisconnectedAt,
		&device.ReconnectCount,
		&device.PollingIntervalSeconds,
		&device.LastPolledAt,
		&device.NextPollAt,
		&device.TokenHash,
		&device.TokenExpiresAt,
		&metadata,
		&device.Decommissioned,
		&device.CreatedAt,
		&device.UpdatedAt,
		&device.SyncedAt,
	)
	if err != nil {
		return nil, err
	}

	if device.ConnectionConfig, err = decodeJSONMap(connectionConfig); err != nil {
		return nil, fmt.Errorf("decode connection config: %w", err)
	}

	if device.Metadata, err = decodeJSONMap(metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	return &device, nil
}

func gatherDevices(rows pgx.Rows) ([]*models.Device, error) {
	var devices []*models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w device row: %w", ErrFailedToScan, err)
		}

		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w device rows: %w", ErrFailedToQuery, err)
	}

	return devices, nil
}
