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

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const defaultCommandQueryLimit = 100

const commandColumns = `
	id,
	device_id,
	site_id,
	command_type,
	params,
	status,
	priority,
	created_by,
	created_at,
	scheduled_at,
	sent_at,
	acknowledged_at,
	completed_at,
	expires_at,
	retry_count,
	max_retries,
	result,
	error_code,
	error_message`

const insertCommandSQL = `
INSERT INTO device_commands (
	id,
	device_id,
	site_id,
	command_type,
	params,
	status,
	priority,
	created_by,
	created_at,
	scheduled_at,
	expires_at,
	retry_count,
	max_retries
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13
)`

// claimNextCommandSQL claims the single most urgent eligible command for a
// device. SKIP LOCKED keeps concurrent claimers from ever returning the same
// row, so each command has at most one consumer.
const claimNextCommandSQL = `
UPDATE device_commands SET
	status = 'claimed'
WHERE id = (
	SELECT id
	FROM device_commands
	WHERE status = 'pending'
	  AND device_id = $1
	  AND (scheduled_at IS NULL OR scheduled_at <= $2)
	  AND (expires_at IS NULL OR expires_at > $2)
	ORDER BY priority ASC, created_at ASC
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
RETURNING` + commandColumns

const markCommandSentSQL = `
UPDATE device_commands SET
	status = 'sent',
	sent_at = $2
WHERE id = $1 AND status = 'claimed'`

const markCommandAcknowledgedSQL = `
UPDATE device_commands SET
	status = 'acknowledged',
	acknowledged_at = $2
WHERE id = $1 AND status = 'sent'`

// completeCommandSQL accepts claimed as a source state because locally
// executed commands never pass through sent.
const completeCommandSQL = `
UPDATE device_commands SET
	status = 'completed',
	completed_at = $2,
	result = $3
WHERE id = $1 AND status IN ('claimed', 'sent', 'acknowledged')`

const failCommandSQL = `
UPDATE device_commands SET
	status = 'failed',
	completed_at = $2,
	error_code = $3,
	error_message = $4,
	result = $5
WHERE id = $1 AND status IN ('claimed', 'sent', 'acknowledged')`

const retryCommandSQL = `
UPDATE device_commands SET
	status = 'pending',
	retry_count = retry_count + 1,
	sent_at = NULL,
	acknowledged_at = NULL,
	completed_at = NULL,
	result = NULL,
	error_code = '',
	error_message = ''
WHERE id = $1 AND status = 'failed' AND retry_count < max_retries`

const retryFailedCommandsSQL = `
UPDATE device_commands SET
	status = 'pending',
	retry_count = retry_count + 1,
	sent_at = NULL,
	acknowledged_at = NULL,
	completed_at = NULL,
	result = NULL,
	error_code = '',
	error_message = ''
WHERE device_id = $1 AND status = 'failed' AND retry_count < max_retries`

const cancelCommandSQL = `
UPDATE device_commands SET
	status = 'cancelled',
	completed_at = $2,
	error_code = $3
WHERE id = $1 AND status IN ('pending', 'claimed', 'sent', 'acknowledged')`

const expireCommandsSQL = `
UPDATE device_commands SET
	status = 'expired',
	completed_at = $1,
	error_code = $2
WHERE expires_at IS NOT NULL
  AND expires_at <= $1
  AND status IN ('pending', 'claimed', 'sent', 'acknowledged')`

// CreateCommand queues a command. Missing id, status, priority, and retry
// budget are filled with defaults.
func (db *DB) CreateCommand(ctx context.Context, cmd *models.DeviceCommand) error {
	if cmd == nil {
		return ErrCommandNil
	}

	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ID == "" {
		cmd.ID = uuid.New().String()
	}

	if cmd.Status == "" {
		cmd.Status = models.CommandStatusPending
	}

	if cmd.Priority == 0 {
		cmd.Priority = models.CommandPriorityDefault
	}

	if cmd.MaxRetries == 0 {
		cmd.MaxRetries = models.DefaultCommandMaxRetries
	}

	cmd.CreatedAt = sanitizeTimestamp(cmd.CreatedAt)

	params, err := normalizeJSON(cmd.Params)
	if err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	_, err = db.pool.Exec(ctx, insertCommandSQL,
		cmd.ID,
		cmd.DeviceID,
		cmd.SiteID,
		cmd.CommandType,
		params,
		string(cmd.Status),
		cmd.Priority,
		cmd.CreatedBy,
		cmd.CreatedAt,
		toNullableTime(cmd.ScheduledAt),
		toNullableTime(cmd.ExpiresAt),
		cmd.RetryCount,
		cmd.MaxRetries,
	)
	if err != nil {
		return fmt.Errorf("create command %s: %w", cmd.ID, err)
	}

	return nil
}

// GetCommand fetches one queue entry by id.
func (db *DB) GetCommand(ctx context.Context, id string) (*models.DeviceCommand, error) {
	row := db.pool.QueryRow(ctx, `SELECT`+commandColumns+` FROM device_commands WHERE id = $1`, id)

	cmd, err := scanCommand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommandNotFound
		}

		return nil, fmt.Errorf("%w command %s: %w", ErrFailedToQuery, id, err)
	}

	return cmd, nil
}

// ListCommandsByDevice returns a device's queue history, newest first.
func (db *DB) ListCommandsByDevice(ctx context.Context, deviceID string, limit int) ([]*models.DeviceCommand, error) {
	if limit <= 0 {
		limit = defaultCommandQueryLimit
	}

	rows, err := db.pool.Query(ctx, `SELECT`+commandColumns+`
FROM device_commands
WHERE device_id = $1
ORDER BY created_at DESC
LIMIT $2`, deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w commands by device: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherCommands(rows)
}

// ListCommandsByStatus returns commands in one lifecycle state, most urgent
// first.
func (db *DB) ListCommandsByStatus(ctx context.Context, status models.CommandStatus, limit int) ([]*models.DeviceCommand, error) {
	if limit <= 0 {
		limit = defaultCommandQueryLimit
	}

	rows, err := db.pool.Query(ctx, `SELECT`+commandColumns+`
FROM device_commands
WHERE status = $1
ORDER BY priority ASC, created_at ASC
LIMIT $2`, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("%w commands by status: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return gatherCommands(rows)
}

// ClaimNextCommand atomically moves the most urgent eligible pending command
// for a device to claimed and returns it. ErrNoPendingCommands means the
// queue is empty for this device right now.
func (db *DB) ClaimNextCommand(ctx context.Context, deviceID string) (*models.DeviceCommand, error) {
	if deviceID == "" {
		return nil, ErrDeviceIDRequired
	}

	row := db.pool.QueryRow(ctx, claimNextCommandSQL, deviceID, nowUTC())

	cmd, err := scanCommand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoPendingCommands
		}

		return nil, fmt.Errorf("%w claim command for %s: %w", ErrFailedToQuery, deviceID, err)
	}

	return cmd, nil
}

// MarkCommandSent records transport handoff. It reports whether the command
// actually moved from claimed to sent.
func (db *DB) MarkCommandSent(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, markCommandSentSQL, id, nowUTC())
	if err != nil {
		return false, fmt.Errorf("mark command %s sent: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkCommandAcknowledged records the device's receipt of a sent command.
func (db *DB) MarkCommandAcknowledged(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, markCommandAcknowledgedSQL, id, nowUTC())
	if err != nil {
		return false, fmt.Errorf("mark command %s acknowledged: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// CompleteCommand terminates a command successfully with its result payload.
func (db *DB) CompleteCommand(ctx context.Context, id string, result map[string]interface{}) (bool, error) {
	payload, err := normalizeJSON(result)
	if err != nil {
		return false, fmt.Errorf("invalid result: %w", err)
	}

	tag, err := db.pool.Exec(ctx, completeCommandSQL, id, nowUTC(), payload)
	if err != nil {
		return false, fmt.Errorf("complete command %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// FailCommand terminates a command with an error code, message, and whatever
// partial result the device returned.
func (db *DB) FailCommand(ctx context.Context, id, errorCode, errorMessage string, result map[string]interface{}) (bool, error) {
	payload, err := normalizeJSON(result)
	if err != nil {
		return false, fmt.Errorf("invalid result: %w", err)
	}

	tag, err := db.pool.Exec(ctx, failCommandSQL, id, nowUTC(), errorCode, errorMessage, payload)
	if err != nil {
		return false, fmt.Errorf("fail command %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// RetryCommand restarts one failed command that still has retry budget,
// clearing the previous attempt's timestamps and error state.
func (db *DB) RetryCommand(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, retryCommandSQL, id)
	if err != nil {
		return false, fmt.Errorf("retry command %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// RetryFailedCommands restarts every failed command with retry budget for a
// device and returns how many went back to pending.
func (db *DB) RetryFailedCommands(ctx context.Context, deviceID string) (int64, error) {
	if deviceID == "" {
		return 0, ErrDeviceIDRequired
	}

	tag, err := db.pool.Exec(ctx, retryFailedCommandsSQL, deviceID)
	if err != nil {
		return 0, fmt.Errorf("retry failed commands for %s: %w", deviceID, err)
	}

	return tag.RowsAffected(), nil
}

// CancelCommand cancels a command that has not reached a terminal state. The
// boolean reports whether this call performed the transition.
func (db *DB) CancelCommand(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, cancelCommandSQL, id, nowUTC(), models.ErrCodeCancelled)
	if err != nil {
		return false, fmt.Errorf("cancel command %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// ExpireCommands sweeps every past-due non-terminal command to expired and
// returns how many it terminated.
func (db *DB) ExpireCommands(ctx context.Context) (int64, error) {
	tag, err := db.pool.Exec(ctx, expireCommandsSQL, nowUTC(), models.ErrCodeExpired)
	if err != nil {
		return 0, fmt.Errorf("expire commands: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanCommand(row pgx.Row) (*models.DeviceCommand, error) {
	var (
		cmd    models.DeviceCommand
		params []byte
		result []byte
	)

	err := row.Scan(
		&cmd.ID,
		&cmd.DeviceID,
		&cmd.SiteID,
		&cmd.CommandType,
		&params,
		&cmd.Status,
		&cmd.Priority,
		&cmd.CreatedBy,
		&cmd.CreatedAt,
		&cmd.ScheduledAt,
		&cmd.SentAt,
		&cmd.AcknowledgedAt,
		&cmd.CompletedAt,
		&cmd.ExpiresAt,
		&cmd.RetryCount,
		&cmd.MaxRetries,
		&result,
		&cmd.ErrorCode,
		&cmd.ErrorMessage,
	)
	if err != nil {
		return nil, err
	}

	if cmd.Params, err = decodeJSONMap(params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}

	if cmd.Result, err = decodeJSONMap(result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	return &cmd, nil
}

func gatherCommands(rows pgx.Rows) ([]*models.DeviceCommand, error) {
	var cmds []*models.DeviceCommand

	for rows.Next() {
		cmd, err := scanCommand(rows)
		if err != nil {
			return nil, fmt.Errorf("%w command row: %w", ErrFailedToScan, err)
		}

		cmds = append(cmds, cmd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w command rows: %w", ErrFailedToQuery, err)
	}

	return cmds, nil
}
