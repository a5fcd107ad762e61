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

// Package registry owns device identity for the telemetry plane: the device
// rows, their auth tokens, and the live session table. The control plane is
// the system of record for which devices exist; this registry mirrors that
// set and layers runtime state (connection status, poll schedule, sessions)
// on top.
package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

const defaultPollingIntervalSeconds = 60

// nowUTC allows tests to override the timestamp source.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// DeviceRegistry is the concrete Manager over the relational store.
type DeviceRegistry struct {
	db     db.Service
	auth   *models.AuthConfig
	logger logger.Logger

	sessionMu sync.RWMutex
	sessions  map[string]*models.DeviceSession
}

// NewDeviceRegistry creates a registry over the given store. The auth config
// supplies the token pepper and TTL; it must already be validated.
func NewDeviceRegistry(database db.Service, authCfg *models.AuthConfig, log logger.Logger) *DeviceRegistry {
	return &DeviceRegistry{
		db:       database,
		auth:     authCfg,
		logger:   log,
		sessions: make(map[string]*models.DeviceSession),
	}
}

// Create registers a device. An unset polling interval defaults to one
// minute; connection status starts unknown.
func (r *DeviceRegistry) Create(ctx context.Context, device *models.Device) error {
	if device == nil {
		return db.ErrDeviceNil
	}

	if device.PollingIntervalSeconds == 0 {
		device.PollingIntervalSeconds = defaultPollingIntervalSeconds
	}

	if device.ConnectionStatus == "" {
		device.ConnectionStatus = models.ConnectionStatusUnknown
	}

	if err := device.Validate(); err != nil {
		return err
	}

	if err := r.db.CreateDevice(ctx, device); err != nil {
		return err
	}

	r.logger.Info().
		Str("device_id", device.ID).
		Str("serial_number", device.SerialNumber).
		Str("site_id", device.SiteID).
		Str("device_type", string(device.Kind)).
		Msg("Device registered")

	return nil
}

func (r *DeviceRegistry) GetByID(ctx context.Context, id string) (*models.Device, error) {
	return r.db.GetDevice(ctx, id)
}

func (r *DeviceRegistry) GetBySerial(ctx context.Context, serial string) (*models.Device, error) {
	return r.db.GetDeviceBySerial(ctx, serial)
}

func (r *DeviceRegistry) ListBySite(ctx context.Context, siteID string) ([]*models.Device, error) {
	return r.db.ListDevicesBySite(ctx, siteID)
}

func (r *DeviceRegistry) ListByOrg(ctx context.Context, orgID string) ([]*models.Device, error) {
	return r.db.ListDevicesByOrg(ctx, orgID)
}

// Update rewrites a device row. Runtime columns the registry owns
// (connection state, poll stamps, token digest) are carried along as-is.
func (r *DeviceRegistry) Update(ctx context.Context, device *models.Device) error {
	if device == nil {
		return db.ErrDeviceNil
	}

	if err := device.Validate(); err != nil {
		return err
	}

	return r.db.UpdateDevice(ctx, device)
}

// Decommission retires a device. It drops out of polling, listings, and
// authentication but keeps its row and historical telemetry.
func (r *DeviceRegistry) Decommission(ctx context.Context, id string) error {
	if err := r.db.DecommissionDevice(ctx, id); err != nil {
		return err
	}

	r.CloseSession(id)

	r.logger.Info().Str("device_id", id).Msg("Device decommissioned")

	return nil
}

func (r *DeviceRegistry) ListConnected(ctx context.Context) ([]*models.Device, error) {
	return r.db.ListConnectedDevices(ctx)
}

func (r *DeviceRegistry) ListDueForPolling(ctx context.Context, limit int) ([]*models.Device, error) {
	return r.db.ListDevicesDueForPolling(ctx, limit)
}

// UpdateConnectionStatus records a transport state transition. Repeating the
// current status is a no-op at the storage layer; the reconnect counter only
// moves on a genuine reconnect.
func (r *DeviceRegistry) UpdateConnectionStatus(ctx context.Context, id string, status models.ConnectionStatus) error {
	if err := r.db.UpdateConnectionStatus(ctx, id, status); err != nil {
		return err
	}

	r.logger.Debug().
		Str("device_id", id).
		Str("status", string(status)).
		Msg("Device connection status updated")

	return nil
}

// UpdatePollTime stamps the device as polled now and schedules the next poll
// one polling interval from now.
func (r *DeviceRegistry) UpdatePollTime(ctx context.Context, device *models.Device) error {
	if device == nil {
		return db.ErrDeviceNil
	}

	now := nowUTC()

	return r.db.UpdateDevicePollTime(ctx, device.ID, now, now.Add(device.PollingInterval()))
}

func (r *DeviceRegistry) MarkSynced(ctx context.Context, ids []string) error {
	return r.db.MarkDevicesSynced(ctx, ids)
}

func (r *DeviceRegistry) ListUnsynced(ctx context.Context) ([]*models.Device, error) {
	return r.db.ListUnsyncedDevices(ctx)
}

// SyncFromControlPlane upserts the control plane's view of the fleet. Rows
// are matched by device id; runtime columns this plane owns are left alone
// by the upsert. Invalid entries are skipped, not fatal, so one bad record
// cannot stall a sync cycle. Returns the number of devices applied.
func (r *DeviceRegistry) SyncFromControlPlane(ctx context.Context, devices []*models.Device) (int, error) {
	applied := 0

	for _, device := range devices {
		if device == nil {
			continue
		}

		if device.PollingIntervalSeconds == 0 {
			device.PollingIntervalSeconds = defaultPollingIntervalSeconds
		}

		if device.ConnectionStatus == "" {
			device.ConnectionStatus = models.ConnectionStatusUnknown
		}

		if err := device.Validate(); err != nil {
			r.logger.Warn().
				Err(err).
				Str("device_id", device.ID).
				Str("serial_number", device.SerialNumber).
				Msg("Skipping invalid device from control-plane sync")

			continue
		}

		if err := r.db.UpsertDeviceFromSync(ctx, device); err != nil {
			return applied, fmt.Errorf("sync device %s: %w", device.ID, err)
		}

		applied++
	}

	r.logger.Info().
		Int("applied", applied).
		Int("received", len(devices)).
		Msg("Control-plane device sync applied")

	return applied, nil
}

func (r *DeviceRegistry) ConnectionStats(ctx context.Context) (*models.ConnectionStats, error) {
	return r.db.GetConnectionStats(ctx)
}

func (r *DeviceRegistry) DeviceKindCounts(ctx context.Context) ([]models.DeviceKindCount, error) {
	return r.db.GetDeviceKindCounts(ctx)
}
