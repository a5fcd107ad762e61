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

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

func newTestRegistry(t *testing.T, authCfg *models.AuthConfig) (*DeviceRegistry, *db.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	if authCfg == nil {
		authCfg = &models.AuthConfig{}
	}

	require.NoError(t, authCfg.Validate())

	mockDB := db.NewMockService(ctrl)

	return NewDeviceRegistry(mockDB, authCfg, logger.NewTestLogger()), mockDB
}

func overrideNowUTC(t *testing.T, fixed time.Time) {
	t.Helper()

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })
}

func validTestDevice() *models.Device {
	return &models.Device{
		ID:             "site-1:inv-01",
		SerialNumber:   "SN-INV-01",
		OrganizationID: "org-1",
		SiteID:         "site-1",
		Kind:           models.DeviceKindInverter,
		Protocol:       models.ProtocolMQTT,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	reg, mockDB := newTestRegistry(t, nil)

	var stored *models.Device

	mockDB.EXPECT().
		CreateDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, device *models.Device) error {
			stored = device
			return nil
		})

	device := validTestDevice()
	require.NoError(t, reg.Create(context.Background(), device))

	require.NotNil(t, stored)
	assert.Equal(t, 60, stored.PollingIntervalSeconds)
	assert.Equal(t, models.ConnectionStatusUnknown, stored.ConnectionStatus)
}

func TestCreateRejectsInvalidDevice(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)

	require.ErrorIs(t, reg.Create(context.Background(), nil), db.ErrDeviceNil)

	device := validTestDevice()
	device.SerialNumber = ""

	require.Error(t, reg.Create(context.Background(), device))
}

func TestUpdatePollTimeSchedulesNextPoll(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	reg, mockDB := newTestRegistry(t, nil)

	device := validTestDevice()
	device.PollingIntervalSeconds = 300

	mockDB.EXPECT().
		UpdateDevicePollTime(gomock.Any(), device.ID, fixed, fixed.Add(5*time.Minute)).
		Return(nil)

	require.NoError(t, reg.UpdatePollTime(context.Background(), device))
}

func TestSyncFromControlPlaneSkipsInvalidEntries(t *testing.T) {
	reg, mockDB := newTestRegistry(t, nil)

	valid := validTestDevice()
	valid.PollingIntervalSeconds = 0
	valid.ConnectionStatus = ""

	broken := validTestDevice()
	broken.ID = "site-1:broken"
	broken.SerialNumber = ""

	var synced []*models.Device

	mockDB.EXPECT().
		UpsertDeviceFromSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, device *models.Device) error {
			synced = append(synced, device)
			return nil
		}).
		Times(1)

	applied, err := reg.SyncFromControlPlane(context.Background(), []*models.Device{valid, broken, nil})
	require.NoError(t, err)

	assert.Equal(t, 1, applied)
	require.Len(t, synced, 1)
	assert.Equal(t, valid.ID, synced[0].ID)
	assert.Equal(t, 60, synced[0].PollingIntervalSeconds)
	assert.Equal(t, models.ConnectionStatusUnknown, synced[0].ConnectionStatus)
}

func TestDecommissionClosesOpenSession(t *testing.T) {
	reg, mockDB := newTestRegistry(t, nil)

	reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")

	mockDB.EXPECT().DecommissionDevice(gomock.Any(), "site-1:inv-01").Return(nil)

	require.NoError(t, reg.Decommission(context.Background(), "site-1:inv-01"))
	assert.False(t, reg.TouchSession("site-1:inv-01"), "session must be gone after decommission")
}
