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

// Package dispatch runs the persistent device command queue. Commands move
// pending -> claimed -> sent -> acknowledged -> completed, with fail edges
// from every claimed-or-later state and an explicit retry edge that
// restarts a failed command. All transition guards live in the store's SQL,
// so a transition that raced a sweep or another consumer simply reports
// false.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// settleTimeout bounds the terminal transition after an executor returns.
// It runs on its own context so a cancelled caller cannot strand a command
// in claimed.
const settleTimeout = 5 * time.Second

// ErrResultRequired is returned when ReportResult is called without a
// result payload.
var ErrResultRequired = errors.New("command result is required")

var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Dispatcher is the concrete Service over the relational queue.
type Dispatcher struct {
	db        db.Service
	executors Registry
	logger    logger.Logger
}

// NewDispatcher creates a dispatcher. The executor registry is usually
// populated at wiring time; a nil registry is replaced with an empty one.
func NewDispatcher(database db.Service, executors Registry, log logger.Logger) *Dispatcher {
	if executors == nil {
		executors = NewRegistry()
	}

	return &Dispatcher{
		db:        database,
		executors: executors,
		logger:    log,
	}
}

// Create queues a command at its given priority, defaulting to
// CommandPriorityDefault. The status a caller supplies is ignored: every
// command enters the queue pending.
func (d *Dispatcher) Create(ctx context.Context, cmd *models.DeviceCommand) (*models.DeviceCommand, error) {
	if cmd == nil {
		return nil, db.ErrCommandNil
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cmd.Status = models.CommandStatusPending

	if err := d.db.CreateCommand(ctx, cmd); err != nil {
		return nil, fmt.Errorf("queue command for %s: %w", cmd.DeviceID, err)
	}

	d.logger.Debug().
		Str("command_id", cmd.ID).
		Str("device_id", cmd.DeviceID).
		Str("command_type", cmd.CommandType).
		Int("priority", cmd.Priority).
		Msg("Queued device command")

	return cmd, nil
}

// CreateImmediate queues a command at the most urgent priority, overriding
// whatever priority the caller set.
func (d *Dispatcher) CreateImmediate(ctx context.Context, cmd *models.DeviceCommand) (*models.DeviceCommand, error) {
	if cmd == nil {
		return nil, db.ErrCommandNil
	}

	cmd.Priority = models.CommandPriorityImmediate

	return d.Create(ctx, cmd)
}

// Get fetches one command by id.
func (d *Dispatcher) Get(ctx context.Context, id string) (*models.DeviceCommand, error) {
	return d.db.GetCommand(ctx, id)
}

// ListByDevice returns a device's queue history, newest first.
func (d *Dispatcher) ListByDevice(ctx context.Context, deviceID string, limit int) ([]*models.DeviceCommand, error) {
	return d.db.ListCommandsByDevice(ctx, deviceID, limit)
}

// ListByStatus returns commands in one lifecycle state, most urgent first.
func (d *Dispatcher) ListByStatus(ctx context.Context, status models.CommandStatus, limit int) ([]*models.DeviceCommand, error) {
	return d.db.ListCommandsByStatus(ctx, status, limit)
}

// Claim atomically claims the most urgent eligible pending command for a
// device. An empty queue returns (nil, nil).
func (d *Dispatcher) Claim(ctx context.Context, deviceID string) (*models.DeviceCommand, error) {
	cmd, err := d.db.ClaimNextCommand(ctx, deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNoPendingCommands) {
			return nil, nil
		}

		return nil, err
	}

	d.logger.Debug().
		Str("command_id", cmd.ID).
		Str("device_id", cmd.DeviceID).
		Str("command_type", cmd.CommandType).
		Msg("Claimed device command")

	return cmd, nil
}

// ClaimAndExecute claims the next command for a device and drives it to a
// terminal state: failed NO_EXECUTOR when no executor is registered for
// its type, otherwise completed or failed per the executor's result. The
// executor runs under the command's expires_at deadline when one is set.
func (d *Dispatcher) ClaimAndExecute(ctx context.Context, deviceID string) (*models.DeviceCommand, error) {
	cmd, err := d.Claim(ctx, deviceID)
	if err != nil || cmd == nil {
		return nil, err
	}

	fn, ok := d.executors.Lookup(cmd.CommandType)
	if !ok {
		d.logger.Warn().
			Str("command_id", cmd.ID).
			Str("command_type", cmd.CommandType).
			Msg("No executor registered for claimed command")

		if err := d.settle(cmd, &models.CommandResult{
			Success:      false,
			ErrorCode:    models.ErrCodeNoExecutor,
			ErrorMessage: fmt.Sprintf("no executor registered for command type %q", cmd.CommandType),
		}); err != nil {
			return nil, err
		}

		return cmd, nil
	}

	execCtx := ctx

	if cmd.ExpiresAt != nil {
		var cancel context.CancelFunc

		execCtx, cancel = context.WithDeadline(ctx, *cmd.ExpiresAt)
		defer cancel()
	}

	result := runExecutor(execCtx, fn, cmd)

	if !result.Success && result.ErrorCode == "" {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			result.ErrorCode = models.ErrCodeTimeout
		} else {
			result.ErrorCode = models.ErrCodeException
		}
	}

	if err := d.settle(cmd, result); err != nil {
		return nil, err
	}

	return cmd, nil
}

// runExecutor invokes the executor, converting a panic into a failed
// result so one broken executor cannot take down the scheduler. A nil
// result counts as success.
func runExecutor(ctx context.Context, fn ExecutorFunc, cmd *models.DeviceCommand) (result *models.CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &models.CommandResult{
				Success:      false,
				ErrorCode:    models.ErrCodeException,
				ErrorMessage: fmt.Sprintf("executor panic: %v", r),
			}
		}
	}()

	result = fn(ctx, cmd)

	if result == nil {
		result = &models.CommandResult{Success: true}
	}

	return result
}

// settle records the executor's outcome on its own bounded context and
// mirrors the transition onto the in-memory command. When the transition
// was not applied the command reached a terminal state underneath the
// executor, so the authoritative row is reloaded instead.
func (d *Dispatcher) settle(cmd *models.DeviceCommand, result *models.CommandResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), settleTimeout)
	defer cancel()

	now := nowUTC()

	var (
		applied bool
		err     error
	)

	if result.Success {
		applied, err = d.db.CompleteCommand(ctx, cmd.ID, result.Data)
	} else {
		if result.ErrorCode == "" {
			result.ErrorCode = models.ErrCodeException
		}

		applied, err = d.db.FailCommand(ctx, cmd.ID, result.ErrorCode, result.ErrorMessage, result.Data)
	}

	if err != nil {
		return fmt.Errorf("settle command %s: %w", cmd.ID, err)
	}

	if !applied {
		d.logger.Warn().
			Str("command_id", cmd.ID).
			Msg("Command reached a terminal state during execution")

		fresh, getErr := d.db.GetCommand(ctx, cmd.ID)
		if getErr != nil {
			return fmt.Errorf("reload command %s: %w", cmd.ID, getErr)
		}

		*cmd = *fresh

		return nil
	}

	cmd.CompletedAt = &now
	cmd.Result = result.Data

	if result.Success {
		cmd.Status = models.CommandStatusCompleted

		d.logger.Debug().
			Str("command_id", cmd.ID).
			Str("device_id", cmd.DeviceID).
			Msg("Command completed")

		return nil
	}

	cmd.Status = models.CommandStatusFailed
	cmd.ErrorCode = result.ErrorCode
	cmd.ErrorMessage = result.ErrorMessage

	d.logger.Debug().
		Str("command_id", cmd.ID).
		Str("device_id", cmd.DeviceID).
		Str("error_code", cmd.ErrorCode).
		Msg("Command failed")

	return nil
}

// MarkSent records transport handoff of a claimed command.
func (d *Dispatcher) MarkSent(ctx context.Context, id string) (bool, error) {
	return d.db.MarkCommandSent(ctx, id)
}

// MarkAcknowledged records the device's receipt of a sent command.
func (d *Dispatcher) MarkAcknowledged(ctx context.Context, id string) (bool, error) {
	return d.db.MarkCommandAcknowledged(ctx, id)
}

// Complete terminates a command successfully with its result payload.
func (d *Dispatcher) Complete(ctx context.Context, id string, result map[string]interface{}) (bool, error) {
	return d.db.CompleteCommand(ctx, id, result)
}

// Fail terminates a command with an error code, message, and partial
// result.
func (d *Dispatcher) Fail(ctx context.Context, id, errorCode, errorMessage string, result map[string]interface{}) (bool, error) {
	if errorCode == "" {
		errorCode = models.ErrCodeException
	}

	return d.db.FailCommand(ctx, id, errorCode, errorMessage, result)
}

// ReportResult settles a command from a device-originated answer, used
// when the device responds asynchronously rather than via executor
// return.
func (d *Dispatcher) ReportResult(ctx context.Context, commandID string, result *models.CommandResult) (bool, error) {
	if result == nil {
		return false, ErrResultRequired
	}

	if result.Success {
		return d.Complete(ctx, commandID, result.Data)
	}

	return d.Fail(ctx, commandID, result.ErrorCode, result.ErrorMessage, result.Data)
}

// Retry restarts one failed command that still has retry budget.
func (d *Dispatcher) Retry(ctx context.Context, id string) (bool, error) {
	applied, err := d.db.RetryCommand(ctx, id)
	if err != nil {
		return false, err
	}

	if applied {
		d.logger.Info().Str("command_id", id).Msg("Command returned to queue for retry")
	}

	return applied, nil
}

// RetryFailed restarts every failed command with retry budget for a
// device.
func (d *Dispatcher) RetryFailed(ctx context.Context, deviceID string) (int64, error) {
	count, err := d.db.RetryFailedCommands(ctx, deviceID)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		d.logger.Info().
			Str("device_id", deviceID).
			Int64("count", count).
			Msg("Failed commands returned to queue")
	}

	return count, nil
}

// Cancel transitions a non-terminal command to cancelled.
func (d *Dispatcher) Cancel(ctx context.Context, id string) (bool, error) {
	applied, err := d.db.CancelCommand(ctx, id)
	if err != nil {
		return false, err
	}

	if applied {
		d.logger.Info().Str("command_id", id).Msg("Command cancelled")
	}

	return applied, nil
}

// ExpireCommands sweeps past-due non-terminal commands to expired.
func (d *Dispatcher) ExpireCommands(ctx context.Context) (int64, error) {
	count, err := d.db.ExpireCommands(ctx)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		d.logger.Info().Int64("count", count).Msg("Expired past-due commands")
	}

	return count, nil
}
