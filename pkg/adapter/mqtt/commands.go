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

package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eclipse/paho.golang/paho"
	"github.com/google/uuid"

	"github.com/heliotrace/solarmesh/pkg/adapter"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// correlationIDLength keeps command ids short enough for constrained
// device firmwares that log them.
const correlationIDLength = 8

func newCommandID() string {
	return uuid.NewString()[:correlationIDLength]
}

// HandleCommand publishes a command and waits for the matching response.
// Every outcome is a result map: the device's response on success, or
// {ok:false, reason, command_id} on publish failure, timeout, or
// cancellation. The pending entry is removed on every path.
func (a *Adapter) HandleCommand(ctx context.Context, cmd models.AdapterCommand) map[string]interface{} {
	commandID := newCommandID()

	a.mu.Lock()
	cm := a.cm
	a.mu.Unlock()

	if cm == nil {
		return adapter.CommandFailed(commandID, "not connected")
	}

	request := map[string]interface{}{
		"command_id": commandID,
		"action":     cmd.Action,
		"ts":         nowUTC().Format(time.RFC3339),
	}

	for k, v := range cmd.Params {
		if k == "command_id" || k == "action" || k == "ts" {
			continue
		}

		request[k] = v
	}

	body, err := json.Marshal(request)
	if err != nil {
		return adapter.CommandFailed(commandID, err.Error())
	}

	responseCh := make(chan map[string]interface{}, 1)

	a.pendingMu.Lock()
	a.pending[commandID] = responseCh
	a.pendingMu.Unlock()

	defer a.removePending(commandID)

	if _, err := cm.Publish(ctx, &paho.Publish{
		Topic:   a.topic("command"),
		Payload: body,
		QoS:     a.cfg.QoS,
	}); err != nil {
		a.log.Warn().
			Err(err).
			Str("device_id", a.device.ID).
			Str("command_id", commandID).
			Msg("Command publish failed")

		return adapter.CommandFailed(commandID, err.Error())
	}

	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = time.Duration(a.cfg.CommandTimeout)
	}

	return a.awaitResponse(ctx, commandID, responseCh, timeout)
}

// awaitResponse blocks until the device answers, the timeout lapses, or
// ctx is cancelled.
func (a *Adapter) awaitResponse(ctx context.Context, commandID string, responseCh <-chan map[string]interface{}, timeout time.Duration) map[string]interface{} {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-responseCh:
		return result
	case <-timer.C:
		a.log.Debug().
			Str("device_id", a.device.ID).
			Str("command_id", commandID).
			Dur("timeout", timeout).
			Msg("Command response timed out")

		return adapter.CommandFailed(commandID, "timeout")
	case <-ctx.Done():
		return adapter.CommandFailed(commandID, "cancelled")
	}
}

func (a *Adapter) removePending(commandID string) {
	a.pendingMu.Lock()
	delete(a.pending, commandID)
	a.pendingMu.Unlock()
}

// handleCommandResponse resolves the waiting HandleCommand call, if any.
// The entry is claimed under the lock, so a response races a timeout
// without ever double-resolving.
func (a *Adapter) handleCommandResponse(payload []byte) {
	var response map[string]interface{}
	if err := json.Unmarshal(payload, &response); err != nil {
		a.log.Warn().Err(err).Str("device_id", a.device.ID).Msg("Dropping undecodable command response")
		return
	}

	commandID, _ := response["command_id"].(string)
	if commandID == "" {
		a.log.Warn().Str("device_id", a.device.ID).Msg("Command response without command_id")
		return
	}

	a.pendingMu.Lock()
	responseCh, ok := a.pending[commandID]
	if ok {
		delete(a.pending, commandID)
	}
	a.pendingMu.Unlock()

	if !ok {
		a.log.Debug().
			Str("device_id", a.device.ID).
			Str("command_id", commandID).
			Msg("Response for unknown or already-resolved command")

		return
	}

	if _, has := response["ok"]; !has {
		response["ok"] = true
	}

	responseCh <- response
}

// pendingCount is a test hook.
func (a *Adapter) pendingCount() int {
	a.pendingMu.Lock()
	defer a.pendingMu.Unlock()

	return len(a.pending)
}
