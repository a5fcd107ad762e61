package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliotrace/solarmesh/pkg/models"
)

func TestBuildDeviceArgs(t *testing.T) {
	fixed := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	connected := fixed.Add(-time.Hour)
	device := &models.Device{
		ID:                     "dev-1",
		SerialNumber:           "INV-2025-0001",
		OrganizationID:         "org-1",
		SiteID:                 "site-1",
		Kind:                   models.DeviceKindInverter,
		Protocol:               models.ProtocolModbusTCP,
		ConnectionConfig:       map[string]interface{}{"host": "10.0.0.5", "port": 502},
		ConnectionStatus:       models.ConnectionStatusConnected,
		LastConnectedAt:        &connected,
		ReconnectCount:         3,
		PollingIntervalSeconds: 60,
		TokenHash:              "sha256:abc",
		Metadata:               map[string]interface{}{"firmware": "1.4.2"},
	}

	args, err := buildDeviceArgs(device)
	require.NoError(t, err)
	require.Len(t, args, 21)

	assert.Equal(t, "dev-1", args[0])
	assert.Equal(t, "INV-2025-0001", args[1])
	assert.Equal(t, "inverter", args[4])
	assert.Equal(t, "modbus_tcp", args[5])

	config, ok := args[6].(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"host":"10.0.0.5","port":502}`, string(config))

	assert.Equal(t, "connected", args[7])
	assert.Equal(t, connected, args[8])
	assert.Nil(t, args[9])
	assert.Equal(t, 3, args[10])
	assert.Equal(t, 60, args[11])
	assert.Nil(t, args[12])
	assert.Nil(t, args[13])
	assert.Equal(t, "sha256:abc", args[14])
	assert.Nil(t, args[15])
	assert.Equal(t, fixed, args[18])
	assert.Equal(t, fixed, args[19])
	assert.Nil(t, args[20])
}

func TestBuildDeviceArgsDefaultsStatusToUnknown(t *testing.T) {
	device := &models.Device{
		ID:                     "dev-2",
		SerialNumber:           "MTR-0002",
		OrganizationID:         "org-1",
		SiteID:                 "site-1",
		Kind:                   models.DeviceKindMeter,
		PollingIntervalSeconds: 30,
	}

	args, err := buildDeviceArgs(device)
	require.NoError(t, err)

	assert.Equal(t, "unknown", args[7])
	assert.Nil(t, args[6], "empty connection config should map to NULL")
	assert.Nil(t, args[16], "empty metadata should map to NULL")
}

func TestBuildDeviceArgsRejectsInvalidDevices(t *testing.T) {
	_, err := buildDeviceArgs(nil)
	assert.ErrorIs(t, err, ErrDeviceNil)

	_, err = buildDeviceArgs(&models.Device{ID: "dev-3"})
	assert.Error(t, err)

	_, err = buildDeviceArgs(&models.Device{
		ID:             "dev-3",
		SerialNumber:   "SN",
		OrganizationID: "org",
		SiteID:         "site",
		Kind:           models.DeviceKindSensor,
	})
	assert.Error(t, err, "zero polling interval must not validate")
}
