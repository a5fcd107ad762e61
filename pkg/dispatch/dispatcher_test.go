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

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *db.MockService, Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	database := db.NewMockService(ctrl)
	executors := NewRegistry()

	return NewDispatcher(database, executors, logger.NewTestLogger()), database, executors
}

func overrideNowUTC(t *testing.T, fixed time.Time) {
	t.Helper()

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })
}

func claimedCommand(commandType string) *models.DeviceCommand {
	return &models.DeviceCommand{
		ID:          "cmd-1",
		DeviceID:    "site-1:inv-01",
		SiteID:      "site-1",
		CommandType: commandType,
		Status:      models.CommandStatusClaimed,
		Priority:    models.CommandPriorityDefault,
		MaxRetries:  models.DefaultCommandMaxRetries,
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	var stored *models.DeviceCommand

	database.EXPECT().
		CreateCommand(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *models.DeviceCommand) error {
			stored = cmd
			return nil
		})

	cmd := &models.DeviceCommand{
		DeviceID:    "site-1:inv-01",
		CommandType: "set_tou_windows",
		Status:      models.CommandStatusCompleted,
	}

	created, err := dispatcher.Create(context.Background(), cmd)
	require.NoError(t, err)

	assert.Same(t, cmd, created)
	assert.Equal(t, models.CommandStatusPending, stored.Status)
}

func TestCreateValidation(t *testing.T) {
	dispatcher, _, _ := newTestDispatcher(t)

	_, err := dispatcher.Create(context.Background(), nil)
	assert.ErrorIs(t, err, db.ErrCommandNil)

	_, err = dispatcher.Create(context.Background(), &models.DeviceCommand{CommandType: "reboot"})
	assert.Error(t, err)

	_, err = dispatcher.Create(context.Background(), &models.DeviceCommand{DeviceID: "site-1:inv-01"})
	assert.Error(t, err)
}

func TestCreateImmediateForcesUrgentPriority(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	var stored *models.DeviceCommand

	database.EXPECT().
		CreateCommand(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *models.DeviceCommand) error {
			stored = cmd
			return nil
		})

	cmd := &models.DeviceCommand{
		DeviceID:    "site-1:inv-01",
		CommandType: "reboot",
		Priority:    models.CommandPriorityDefault,
	}

	_, err := dispatcher.CreateImmediate(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, models.CommandPriorityImmediate, stored.Priority)
	assert.Equal(t, models.CommandStatusPending, stored.Status)
}

func TestClaimEmptyQueueReturnsNil(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(nil, db.ErrNoPendingCommands)

	cmd, err := dispatcher.Claim(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestClaimReturnsClaimedCommand(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	claimed := claimedCommand("read_registers")

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)

	cmd, err := dispatcher.Claim(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Same(t, claimed, cmd)
}

func TestClaimAndExecuteCompletes(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("read_registers")
	resultData := map[string]interface{}{"voltage_v": 239.8}

	executors.Register("read_registers", func(_ context.Context, cmd *models.DeviceCommand) *models.CommandResult {
		assert.Same(t, claimed, cmd)

		return &models.CommandResult{Success: true, Data: resultData}
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		CompleteCommand(gomock.Any(), "cmd-1", resultData).
		Return(true, nil)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	require.NotNil(t, cmd)
	assert.Equal(t, models.CommandStatusCompleted, cmd.Status)
	assert.Equal(t, resultData, cmd.Result)
	require.NotNil(t, cmd.CompletedAt)
	assert.Equal(t, fixed, *cmd.CompletedAt)
}

func TestClaimAndExecuteEmptyQueue(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(nil, db.ErrNoPendingCommands)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestClaimAndExecuteNoExecutor(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	claimed := claimedCommand("calibrate_trackers")

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-1", models.ErrCodeNoExecutor, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _, _, message string, _ map[string]interface{}) (bool, error) {
			assert.Contains(t, message, "calibrate_trackers")
			return true, nil
		})

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	require.NotNil(t, cmd)
	assert.Equal(t, models.CommandStatusFailed, cmd.Status)
	assert.Equal(t, models.ErrCodeNoExecutor, cmd.ErrorCode)
}

func TestClaimAndExecuteExecutorFailureDefaultsErrorCode(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("set_tou_windows")

	executors.Register("set_tou_windows", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return &models.CommandResult{Success: false, ErrorMessage: "device rejected window layout"}
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-1", models.ErrCodeException, "device rejected window layout", gomock.Nil()).
		Return(true, nil)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	assert.Equal(t, models.CommandStatusFailed, cmd.Status)
	assert.Equal(t, models.ErrCodeException, cmd.ErrorCode)
	assert.Equal(t, "device rejected window layout", cmd.ErrorMessage)
}

func TestClaimAndExecuteExecutorPanic(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("reboot")

	executors.Register("reboot", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		panic("transport driver bug")
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-1", models.ErrCodeException, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _, _, message string, _ map[string]interface{}) (bool, error) {
			assert.Contains(t, message, "executor panic")
			assert.Contains(t, message, "transport driver bug")
			return true, nil
		})

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, models.CommandStatusFailed, cmd.Status)
}

func TestClaimAndExecuteHonorsExpiryDeadline(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	expired := time.Now().UTC().Add(-time.Second)
	claimed := claimedCommand("read_registers")
	claimed.ExpiresAt = &expired

	executors.Register("read_registers", func(ctx context.Context, _ *models.DeviceCommand) *models.CommandResult {
		<-ctx.Done()

		return &models.CommandResult{Success: false, ErrorMessage: "deadline hit"}
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-1", models.ErrCodeTimeout, "deadline hit", gomock.Nil()).
		Return(true, nil)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, models.ErrCodeTimeout, cmd.ErrorCode)
}

func TestClaimAndExecuteNilResultIsSuccess(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("ping")

	executors.Register("ping", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return nil
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		CompleteCommand(gomock.Any(), "cmd-1", gomock.Nil()).
		Return(true, nil)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, models.CommandStatusCompleted, cmd.Status)
}

func TestClaimAndExecuteReloadsAfterTerminalRace(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("read_registers")

	executors.Register("read_registers", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return &models.CommandResult{Success: true}
	})

	swept := claimedCommand("read_registers")
	swept.Status = models.CommandStatusExpired
	swept.ErrorCode = models.ErrCodeExpired

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		CompleteCommand(gomock.Any(), "cmd-1", gomock.Nil()).
		Return(false, nil)
	database.EXPECT().
		GetCommand(gomock.Any(), "cmd-1").
		Return(swept, nil)

	cmd, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	assert.Equal(t, models.CommandStatusExpired, cmd.Status)
	assert.Equal(t, models.ErrCodeExpired, cmd.ErrorCode)
}

func TestClaimAndExecuteSettleFailure(t *testing.T) {
	dispatcher, database, executors := newTestDispatcher(t)

	claimed := claimedCommand("read_registers")

	executors.Register("read_registers", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return &models.CommandResult{Success: true}
	})

	database.EXPECT().
		ClaimNextCommand(gomock.Any(), "site-1:inv-01").
		Return(claimed, nil)
	database.EXPECT().
		CompleteCommand(gomock.Any(), "cmd-1", gomock.Nil()).
		Return(false, errors.New("connection reset"))

	_, err := dispatcher.ClaimAndExecute(context.Background(), "site-1:inv-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settle command")
}

func TestReportResultSuccess(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	data := map[string]interface{}{"applied": true}

	database.EXPECT().
		CompleteCommand(gomock.Any(), "cmd-9", data).
		Return(true, nil)

	applied, err := dispatcher.ReportResult(context.Background(), "cmd-9", &models.CommandResult{
		Success: true,
		Data:    data,
	})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestReportResultFailureDefaultsErrorCode(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-9", models.ErrCodeException, "inverter fault 0x22", gomock.Nil()).
		Return(true, nil)

	applied, err := dispatcher.ReportResult(context.Background(), "cmd-9", &models.CommandResult{
		Success:      false,
		ErrorMessage: "inverter fault 0x22",
	})
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestReportResultRequiresResult(t *testing.T) {
	dispatcher, _, _ := newTestDispatcher(t)

	_, err := dispatcher.ReportResult(context.Background(), "cmd-9", nil)
	assert.ErrorIs(t, err, ErrResultRequired)
}

func TestRetryPassesThrough(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().RetryCommand(gomock.Any(), "cmd-3").Return(true, nil)

	applied, err := dispatcher.Retry(context.Background(), "cmd-3")
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRetryFailedReportsCount(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().RetryFailedCommands(gomock.Any(), "site-1:inv-01").Return(int64(3), nil)

	count, err := dispatcher.RetryFailed(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCancelReportsTransition(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().CancelCommand(gomock.Any(), "cmd-4").Return(true, nil)

	applied, err := dispatcher.Cancel(context.Background(), "cmd-4")
	require.NoError(t, err)
	assert.True(t, applied)

	database.EXPECT().CancelCommand(gomock.Any(), "cmd-4").Return(false, nil)

	applied, err = dispatcher.Cancel(context.Background(), "cmd-4")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestExpireCommandsReportsCount(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().ExpireCommands(gomock.Any()).Return(int64(2), nil)

	count, err := dispatcher.ExpireCommands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFailDefaultsErrorCode(t *testing.T) {
	dispatcher, database, _ := newTestDispatcher(t)

	database.EXPECT().
		FailCommand(gomock.Any(), "cmd-5", models.ErrCodeException, "boom", gomock.Nil()).
		Return(true, nil)

	applied, err := dispatcher.Fail(context.Background(), "cmd-5", "", "boom", nil)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	executors := NewRegistry()

	executors.Register("reboot", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return nil
	})

	fn, ok := executors.Lookup("reboot")
	assert.True(t, ok)
	assert.NotNil(t, fn)

	_, ok = executors.Lookup("unknown")
	assert.False(t, ok)
}

func TestRegistryNilExecutorUnregisters(t *testing.T) {
	executors := NewRegistry()

	executors.Register("reboot", func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult {
		return nil
	})
	executors.Register("reboot", nil)

	_, ok := executors.Lookup("reboot")
	assert.False(t, ok)
}

func TestRegistryTypesSorted(t *testing.T) {
	executors := NewRegistry()

	noop := func(_ context.Context, _ *models.DeviceCommand) *models.CommandResult { return nil }

	executors.Register("set_tou_windows", noop)
	executors.Register("ping", noop)
	executors.Register("reboot", noop)

	assert.Equal(t, []string{"ping", "reboot", "set_tou_windows"}, executors.Types())
}
