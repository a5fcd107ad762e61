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
	"sync"
	"time"
)

// lockoutTracker counts failed attempts per identity over a sliding
// window. An identity with maxFailures in-window failures is locked until
// enough of them age out.
type lockoutTracker struct {
	mu          sync.Mutex
	maxFailures int
	window      time.Duration
	failures    map[string][]time.Time
}

func newLockoutTracker(maxFailures int, window time.Duration) *lockoutTracker {
	return &lockoutTracker{
		maxFailures: maxFailures,
		window:      window,
		failures:    make(map[string][]time.Time),
	}
}

// recordFailure appends a failed attempt for the identity, dropping
// attempts that already aged out of the window.
func (l *lockoutTracker) recordFailure(key string) {
	now := nowUTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := pruneBefore(l.failures[key], now.Add(-l.window))
	l.failures[key] = append(kept, now)
}

// clear forgets every failure for the identity.
func (l *lockoutTracker) clear(key string) {
	l.mu.Lock()
	delete(l.failures, key)
	l.mu.Unlock()
}

// lockedOut reports whether the identity has exhausted its failure budget
// within the window.
func (l *lockoutTracker) lockedOut(key string) bool {
	_, unlocksAt := l.status(key)
	return unlocksAt != nil
}

// status returns the in-window failure count and, when locked, the time
// the window next lets an attempt through.
func (l *lockoutTracker) status(key string) (int, *time.Time) {
	now := nowUTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := pruneBefore(l.failures[key], now.Add(-l.window))

	if len(kept) == 0 {
		delete(l.failures, key)
		return 0, nil
	}

	l.failures[key] = kept

	if len(kept) < l.maxFailures {
		return len(kept), nil
	}

	// Locked until the failure that keeps the count at maxFailures ages
	// out of the window.
	unlocksAt := kept[len(kept)-l.maxFailures].Add(l.window)

	return len(kept), &unlocksAt
}

// sweep drops identities whose failures all aged out and returns how many
// entries it removed.
func (l *lockoutTracker) sweep() int {
	cutoff := nowUTC().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0

	for key, times := range l.failures {
		kept := pruneBefore(times, cutoff)

		if len(kept) == 0 {
			delete(l.failures, key)
			removed++

			continue
		}

		l.failures[key] = kept
	}

	return removed
}

// pruneBefore drops timestamps at or before cutoff. Attempts are recorded
// in order, so the slice stays sorted and a prefix scan suffices.
func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	idx := 0
	for idx < len(times) && !times[idx].After(cutoff) {
		idx++
	}

	if idx == 0 {
		return times
	}

	return append([]time.Time(nil), times[idx:]...)
}
