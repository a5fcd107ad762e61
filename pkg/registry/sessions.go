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
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// OpenSession records a live transport session for a device. A device holds
// at most one session; opening a new one displaces whatever was there.
func (r *DeviceRegistry) OpenSession(deviceID, clientAddr string) *models.DeviceSession {
	now := nowUTC()

	session := &models.DeviceSession{
		DeviceID:       deviceID,
		SessionID:      uuid.NewString(),
		ClientAddr:     clientAddr,
		OpenedAt:       now,
		LastActivityAt: now,
	}

	r.sessionMu.Lock()
	prior := r.sessions[deviceID]
	r.sessions[deviceID] = session
	r.sessionMu.Unlock()

	if prior != nil {
		r.logger.Debug().
			Str("device_id", deviceID).
			Str("displaced_session_id", prior.SessionID).
			Msg("Device session reopened")
	}

	out := *session

	return &out
}

// TouchSession refreshes a session's activity stamp. Returns false when the
// device has no open session.
func (r *DeviceRegistry) TouchSession(deviceID string) bool {
	r.sessionMu.Lock()
	defer r.sessionMu.Unlock()

	session, ok := r.sessions[deviceID]
	if !ok {
		return false
	}

	session.LastActivityAt = nowUTC()

	return true
}

// CloseSession drops a device's session. Returns false when none was open.
func (r *DeviceRegistry) CloseSession(deviceID string) bool {
	r.sessionMu.Lock()
	defer r.sessionMu.Unlock()

	if _, ok := r.sessions[deviceID]; !ok {
		return false
	}

	delete(r.sessions, deviceID)

	return true
}

// ActiveSessions returns a snapshot of open sessions sorted by device id.
func (r *DeviceRegistry) ActiveSessions() []*models.DeviceSession {
	r.sessionMu.RLock()

	out := make([]*models.DeviceSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		cp := *session
		out = append(out, &cp)
	}

	r.sessionMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })

	return out
}

// SweepSessions closes every session idle longer than maxIdle and returns
// how many were dropped.
func (r *DeviceRegistry) SweepSessions(maxIdle time.Duration) int {
	cutoff := nowUTC().Add(-maxIdle)

	r.sessionMu.Lock()

	swept := 0

	for deviceID, session := range r.sessions {
		if session.LastActivityAt.Before(cutoff) {
			delete(r.sessions, deviceID)
			swept++
		}
	}

	r.sessionMu.Unlock()

	if swept > 0 {
		r.logger.Debug().Int("swept", swept).Msg("Idle device sessions closed")
	}

	return swept
}
