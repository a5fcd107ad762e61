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
	"sync"
	"time"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// staleAfterPolls is how many missed polling intervals make a cached
// snapshot stale.
const staleAfterPolls = 2

// TelemetryCache holds the most recent telemetry snapshot for one device.
// Push transports fill it as data arrives; Poll drains it without touching
// the device.
type TelemetryCache struct {
	mu         sync.Mutex
	snapshot   *models.Telemetry
	receivedAt time.Time
}

// NewTelemetryCache creates an empty cache.
func NewTelemetryCache() *TelemetryCache {
	return &TelemetryCache{}
}

// Store replaces the cached snapshot. A zero receivedAt is stamped now.
func (c *TelemetryCache) Store(snapshot *models.Telemetry, receivedAt time.Time) {
	if snapshot == nil {
		return
	}

	if receivedAt.IsZero() {
		receivedAt = nowUTC()
	}

	c.mu.Lock()
	c.snapshot = snapshot
	c.receivedAt = receivedAt.UTC()
	c.mu.Unlock()
}

// Latest returns a copy of the cached snapshot and its arrival time. The
// second return is false when nothing has been stored yet.
func (c *TelemetryCache) Latest() (*models.Telemetry, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return nil, time.Time{}, false
	}

	return cloneTelemetry(c.snapshot), c.receivedAt, true
}

// Age reports how long ago the cached snapshot arrived. ok is false when
// the cache is empty.
func (c *TelemetryCache) Age(now time.Time) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return 0, false
	}

	return now.Sub(c.receivedAt), true
}

// PollSnapshot is the shared Poll behavior for push transports: return the
// cached snapshot, marked stale once it is older than two polling
// intervals. An empty cache yields an empty sentinel snapshot so callers
// can distinguish "no data yet" from a transport failure.
func (c *TelemetryCache) PollSnapshot(device *models.Device, log logger.Logger) *models.Telemetry {
	snapshot, receivedAt, ok := c.Latest()
	if !ok {
		return &models.Telemetry{Stale: true}
	}

	age := nowUTC().Sub(receivedAt)
	if age > staleAfterPolls*device.PollingInterval() {
		snapshot.Stale = true

		log.Warn().
			Str("device_id", device.ID).
			Dur("age", age).
			Dur("polling_interval", device.PollingInterval()).
			Msg("Cached telemetry is stale")
	}

	return snapshot
}

// cloneTelemetry copies a snapshot deeply enough that callers can annotate
// their copy without racing the cache. Value pointers are shared; nothing
// writes through them.
func cloneTelemetry(src *models.Telemetry) *models.Telemetry {
	out := *src

	if len(src.Extra) > 0 {
		out.Extra = make(map[string]interface{}, len(src.Extra))
		for k, v := range src.Extra {
			out.Extra[k] = v
		}
	}

	return &out
}
