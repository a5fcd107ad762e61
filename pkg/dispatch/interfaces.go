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

package dispatch

//go:generate mockgen -destination=mock_dispatch.go -package=dispatch github.com/heliotrace/solarmesh/pkg/dispatch Service

import (
	"context"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// ExecutorFunc runs a claimed command against its device and returns a
// structured result. A nil result counts as success. Implementations must
// honor ctx, which carries the command's expiry deadline when one is set.
type ExecutorFunc func(ctx context.Context, cmd *models.DeviceCommand) *models.CommandResult

// Service is the command queue surface exposed to transports and the
// scheduler.
type Service interface {
	// Create queues a command with default priority. Missing id, status,
	// priority, and retry budget are filled in; the stored command is
	// returned.
	Create(ctx context.Context, cmd *models.DeviceCommand) (*models.DeviceCommand, error)

	// CreateImmediate queues a command at the most urgent priority.
	CreateImmediate(ctx context.Context, cmd *models.DeviceCommand) (*models.DeviceCommand, error)

	// Get fetches one command by id.
	Get(ctx context.Context, id string) (*models.DeviceCommand, error)

	// ListByDevice returns a device's queue history, newest first.
	ListByDevice(ctx context.Context, deviceID string, limit int) ([]*models.DeviceCommand, error)

	// ListByStatus returns commands in one lifecycle state, most urgent
	// first.
	ListByStatus(ctx context.Context, status models.CommandStatus, limit int) ([]*models.DeviceCommand, error)

	// Claim atomically moves the most urgent eligible pending command for
	// a device to claimed and returns it. An empty queue returns
	// (nil, nil).
	Claim(ctx context.Context, deviceID string) (*models.DeviceCommand, error)

	// ClaimAndExecute claims the next command, runs its registered
	// executor under the command's expiry deadline, and settles the
	// outcome as completed or failed. A claimed command with no
	// registered executor fails with NO_EXECUTOR. An empty queue returns
	// (nil, nil); otherwise the settled command is returned.
	ClaimAndExecute(ctx context.Context, deviceID string) (*models.DeviceCommand, error)

	// MarkSent records transport handoff of a claimed command.
	MarkSent(ctx context.Context, id string) (bool, error)

	// MarkAcknowledged records the device's receipt of a sent command.
	MarkAcknowledged(ctx context.Context, id string) (bool, error)

	// Complete terminates a command successfully with its result payload.
	Complete(ctx context.Context, id string, result map[string]interface{}) (bool, error)

	// Fail terminates a command with an error code, message, and whatever
	// partial result the device returned.
	Fail(ctx context.Context, id, errorCode, errorMessage string, result map[string]interface{}) (bool, error)

	// ReportResult is the device-initiated completion path for commands
	// answered asynchronously rather than via executor return.
	ReportResult(ctx context.Context, commandID string, result *models.CommandResult) (bool, error)

	// Retry restarts one failed command that still has retry budget.
	Retry(ctx context.Context, id string) (bool, error)

	// RetryFailed restarts every failed command with retry budget for a
	// device and returns how many went back to pending.
	RetryFailed(ctx context.Context, deviceID string) (int64, error)

	// Cancel transitions a command that has not reached a terminal state
	// to cancelled. The boolean reports whether this call did it.
	Cancel(ctx context.Context, id string) (bool, error)

	// ExpireCommands sweeps past-due non-terminal commands to expired.
	ExpireCommands(ctx context.Context) (int64, error)
}
