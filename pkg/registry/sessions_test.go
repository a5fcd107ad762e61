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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionDisplacesPrior(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)

	first := reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")
	second := reg.OpenSession("site-1:inv-01", "10.0.0.5:52244")

	assert.NotEqual(t, first.SessionID, second.SessionID)

	sessions := reg.ActiveSessions()
	require.Len(t, sessions, 1, "a device holds at most one session")
	assert.Equal(t, second.SessionID, sessions[0].SessionID)
}

func TestTouchAndCloseSession(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)

	assert.False(t, reg.TouchSession("site-1:inv-01"), "no session open yet")

	reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")

	assert.True(t, reg.TouchSession("site-1:inv-01"))
	assert.True(t, reg.CloseSession("site-1:inv-01"))
	assert.False(t, reg.CloseSession("site-1:inv-01"), "second close is a no-op")
}

func TestSweepSessionsDropsIdleOnly(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	current := start

	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	reg, _ := newTestRegistry(t, nil)

	reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")

	current = start.Add(10 * time.Minute)

	reg.OpenSession("site-1:bat-01", "10.0.0.6:52111")

	swept := reg.SweepSessions(5 * time.Minute)
	assert.Equal(t, 1, swept)

	sessions := reg.ActiveSessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "site-1:bat-01", sessions[0].DeviceID)
}

func TestSweepSessionsKeepsRecentlyTouched(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	current := start

	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	reg, _ := newTestRegistry(t, nil)

	reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")

	current = start.Add(4 * time.Minute)
	require.True(t, reg.TouchSession("site-1:inv-01"))

	current = start.Add(8 * time.Minute)

	assert.Equal(t, 0, reg.SweepSessions(5*time.Minute), "touched session is within the idle window")
}

func TestActiveSessionsReturnsIsolatedCopies(t *testing.T) {
	reg, _ := newTestRegistry(t, nil)

	reg.OpenSession("site-1:inv-01", "10.0.0.5:52110")

	snapshot := reg.ActiveSessions()
	require.Len(t, snapshot, 1)

	snapshot[0].DeviceID = "scribbled"

	fresh := reg.ActiveSessions()
	require.Len(t, fresh, 1)
	assert.Equal(t, "site-1:inv-01", fresh[0].DeviceID)
}
