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

package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

func TestTelemetryCacheLatestReturnsCopy(t *testing.T) {
	cache := NewTelemetryCache()

	power := 4200.0
	stored := &models.Telemetry{
		Timestamp: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		PVPowerW:  &power,
		Extra:     map[string]interface{}{"fan_rpm": 1800.0},
	}

	cache.Store(stored, stored.Timestamp)

	got, receivedAt, ok := cache.Latest()
	require.True(t, ok)
	assert.Equal(t, stored.Timestamp, receivedAt)

	got.Extra["fan_rpm"] = 0.0
	got.Stale = true

	again, _, ok := cache.Latest()
	require.True(t, ok)
	assert.Equal(t, 1800.0, again.Extra["fan_rpm"], "cached snapshot must not see caller mutations")
	assert.False(t, again.Stale)
}

func TestTelemetryCacheEmpty(t *testing.T) {
	cache := NewTelemetryCache()

	_, _, ok := cache.Latest()
	assert.False(t, ok)

	_, ok = cache.Age(time.Now())
	assert.False(t, ok)
}

func TestPollSnapshotMarksStale(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	device := &models.Device{ID: "site-1:inv-01", PollingIntervalSeconds: 60}
	cache := NewTelemetryCache()

	power := 3100.0
	cache.Store(&models.Telemetry{Timestamp: fixed.Add(-3 * time.Minute), PVPowerW: &power}, fixed.Add(-3*time.Minute))

	snapshot := cache.PollSnapshot(device, logger.NewTestLogger())
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.Stale, "three minutes exceeds two 60s polling intervals")
	assert.Equal(t, power, *snapshot.PVPowerW)
}

func TestPollSnapshotFreshDataNotStale(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	device := &models.Device{ID: "site-1:inv-01", PollingIntervalSeconds: 60}
	cache := NewTelemetryCache()

	cache.Store(&models.Telemetry{Timestamp: fixed.Add(-30 * time.Second)}, fixed.Add(-30*time.Second))

	snapshot := cache.PollSnapshot(device, logger.NewTestLogger())
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.Stale)
}

func TestPollSnapshotEmptyCacheSentinel(t *testing.T) {
	device := &models.Device{ID: "site-1:inv-01", PollingIntervalSeconds: 60}
	cache := NewTelemetryCache()

	snapshot := cache.PollSnapshot(device, logger.NewTestLogger())
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.Stale)
	assert.True(t, snapshot.Empty())
}
