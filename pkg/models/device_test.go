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

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDevice() Device {
	return Device{
		ID:                     "site-1:inv-01",
		SerialNumber:           "SN-INV-01",
		OrganizationID:         "org-1",
		SiteID:                 "site-1",
		Kind:                   DeviceKindInverter,
		PollingIntervalSeconds: 60,
	}
}

func TestDeviceValidate(t *testing.T) {
	valid := validDevice()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		mutate   func(*Device)
		expected error
	}{
		{"missing id", func(d *Device) { d.ID = "" }, errDeviceIDRequired},
		{"missing serial", func(d *Device) { d.SerialNumber = "" }, errSerialNumberRequired},
		{"missing org", func(d *Device) { d.OrganizationID = "" }, errOrganizationIDRequired},
		{"missing site", func(d *Device) { d.SiteID = "" }, errSiteIDRequired},
		{"missing kind", func(d *Device) { d.Kind = "" }, errDeviceKindRequired},
		{"zero polling interval", func(d *Device) { d.PollingIntervalSeconds = 0 }, errPollingIntervalInvalid},
		{"negative polling interval", func(d *Device) { d.PollingIntervalSeconds = -5 }, errPollingIntervalInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := validDevice()
			tt.mutate(&device)
			assert.ErrorIs(t, device.Validate(), tt.expected)
		})
	}
}

func TestDevicePollingInterval(t *testing.T) {
	device := validDevice()
	assert.Equal(t, time.Minute, device.PollingInterval())

	device.PollingIntervalSeconds = 300
	assert.Equal(t, 5*time.Minute, device.PollingInterval())
}

func TestSeverityAtLeast(t *testing.T) {
	assert.True(t, SeverityCritical.AtLeast(SeverityInfo))
	assert.True(t, SeverityError.AtLeast(SeverityError))
	assert.True(t, SeverityWarning.AtLeast(SeverityInfo))
	assert.False(t, SeverityInfo.AtLeast(SeverityWarning))
	assert.False(t, SeverityError.AtLeast(SeverityCritical))
}

func TestTelemetryEmpty(t *testing.T) {
	var snapshot Telemetry
	assert.True(t, snapshot.Empty())

	power := 3500.0
	snapshot.PVPowerW = &power
	assert.False(t, snapshot.Empty())

	soc := 82.5
	assert.False(t, (&Telemetry{BatterySOC: &soc}).Empty())

	// Vendor keys preserved in Extra still count as data.
	withExtra := Telemetry{Extra: map[string]interface{}{"vendor_code": 7}}
	assert.False(t, withExtra.Empty())

	// The stale flag alone is not data.
	assert.True(t, (&Telemetry{Stale: true}).Empty())
}
