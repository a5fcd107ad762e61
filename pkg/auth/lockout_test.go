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

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideTrackerClock(t *testing.T, start time.Time) func(time.Time) {
	t.Helper()

	current := start
	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	return func(at time.Time) { current = at }
}

func TestLockoutTrackerBelowBudget(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	for i := 0; i < 4; i++ {
		tracker.recordFailure("SN-1")
	}

	assert.False(t, tracker.lockedOut("SN-1"))

	count, unlocksAt := tracker.status("SN-1")
	assert.Equal(t, 4, count)
	assert.Nil(t, unlocksAt)
}

func TestLockoutTrackerLocksAtBudget(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	for i := 0; i < 5; i++ {
		tracker.recordFailure("SN-1")
	}

	assert.True(t, tracker.lockedOut("SN-1"))

	count, unlocksAt := tracker.status("SN-1")
	assert.Equal(t, 5, count)
	require.NotNil(t, unlocksAt)
	assert.Equal(t, start.Add(30*time.Minute), *unlocksAt)
}

func TestLockoutTrackerWindowSlides(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	setClock := overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	// Three early failures and two late ones. The lock holds until the
	// early ones age out and the in-window count drops under the budget.
	for i := 0; i < 3; i++ {
		tracker.recordFailure("SN-1")
	}

	setClock(start.Add(10 * time.Minute))

	for i := 0; i < 2; i++ {
		tracker.recordFailure("SN-1")
	}

	assert.True(t, tracker.lockedOut("SN-1"))

	count, unlocksAt := tracker.status("SN-1")
	assert.Equal(t, 5, count)
	require.NotNil(t, unlocksAt)
	assert.Equal(t, start.Add(30*time.Minute), *unlocksAt)

	setClock(start.Add(30 * time.Minute))

	assert.False(t, tracker.lockedOut("SN-1"))

	count, _ = tracker.status("SN-1")
	assert.Equal(t, 2, count, "late failures are still inside the window")
}

func TestLockoutTrackerClear(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	for i := 0; i < 5; i++ {
		tracker.recordFailure("SN-1")
	}

	require.True(t, tracker.lockedOut("SN-1"))

	tracker.clear("SN-1")

	assert.False(t, tracker.lockedOut("SN-1"))

	count, _ := tracker.status("SN-1")
	assert.Zero(t, count)
}

func TestLockoutTrackerKeysAreIndependent(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	for i := 0; i < 5; i++ {
		tracker.recordFailure("SN-1")
	}

	assert.True(t, tracker.lockedOut("SN-1"))
	assert.False(t, tracker.lockedOut("SN-2"))
}

func TestLockoutTrackerSweep(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	setClock := overrideTrackerClock(t, start)

	tracker := newLockoutTracker(5, 30*time.Minute)

	tracker.recordFailure("SN-old")

	setClock(start.Add(25 * time.Minute))
	tracker.recordFailure("SN-recent")

	setClock(start.Add(35 * time.Minute))

	removed := tracker.sweep()
	assert.Equal(t, 1, removed)

	count, _ := tracker.status("SN-recent")
	assert.Equal(t, 1, count)

	count, _ = tracker.status("SN-old")
	assert.Zero(t, count)
}
