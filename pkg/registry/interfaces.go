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

package registry

//go:generate mockgen -destination=mock_registry.go -package=registry github.com/heliotrace/solarmesh/pkg/registry Manager

import (
	"context"
	"time"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Manager is the authoritative device registry. It owns the device rows in
// the relational store, the device token lifecycle, and the in-memory
// session table. Everything that needs to know about a device goes through
// here rather than the database directly.
type Manager interface {
	// Registration and lookup.

	Create(ctx context.Context, device *models.Device) error
	GetByID(ctx context.Context, id string) (*models.Device, error)
	GetBySerial(ctx context.Context, serial string) (*models.Device, error)
	ListBySite(ctx context.Context, siteID string) ([]*models.Device, error)
	ListByOrg(ctx context.Context, orgID string) ([]*models.Device, error)
	Update(ctx context.Context, device *models.Device) error

	// Decommission retires a device logically. The row and its telemetry
	// stay behind for historical queries.
	Decommission(ctx context.Context, id string) error

	// Connection and polling state.

	ListConnected(ctx context.Context) ([]*models.Device, error)
	ListDueForPolling(ctx context.Context, limit int) ([]*models.Device, error)
	UpdateConnectionStatus(ctx context.Context, id string, status models.ConnectionStatus) error

	// UpdatePollTime stamps the device as polled now and schedules the next
	// poll one polling interval out.
	UpdatePollTime(ctx context.Context, device *models.Device) error

	// Control-plane synchronization.

	MarkSynced(ctx context.Context, ids []string) error
	ListUnsynced(ctx context.Context) ([]*models.Device, error)
	SyncFromControlPlane(ctx context.Context, devices []*models.Device) (int, error)

	// Fleet rollups.

	ConnectionStats(ctx context.Context) (*models.ConnectionStats, error)
	DeviceKindCounts(ctx context.Context) ([]models.DeviceKindCount, error)

	// Token lifecycle. GenerateToken returns the plaintext exactly once;
	// only the peppered digest is stored.

	GenerateToken(ctx context.Context, deviceID string) (string, error)
	ValidateToken(ctx context.Context, deviceID, token string) error
	RevokeToken(ctx context.Context, deviceID string) error
	AuthenticateBySerial(ctx context.Context, serial, token string) (*models.Device, error)

	// Session table. Sessions are in-memory only and vanish on restart;
	// devices re-open them on their next connect.

	OpenSession(deviceID, clientAddr string) *models.DeviceSession
	TouchSession(deviceID string) bool
	CloseSession(deviceID string) bool
	ActiveSessions() []*models.DeviceSession
	SweepSessions(maxIdle time.Duration) int
}
