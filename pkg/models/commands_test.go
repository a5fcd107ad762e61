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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   CommandStatus
		terminal bool
	}{
		{CommandStatusPending, false},
		{CommandStatusClaimed, false},
		{CommandStatusSent, false},
		{CommandStatusAcknowledged, false},
		{CommandStatusCompleted, true},
		{CommandStatusFailed, true},
		{CommandStatusCancelled, true},
		{CommandStatusExpired, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestCommandCanRetry(t *testing.T) {
	tests := []struct {
		name     string
		cmd      DeviceCommand
		expected bool
	}{
		{
			name:     "failed under budget",
			cmd:      DeviceCommand{Status: CommandStatusFailed, RetryCount: 2, MaxRetries: 3},
			expected: true,
		},
		{
			name:     "failed at budget",
			cmd:      DeviceCommand{Status: CommandStatusFailed, RetryCount: 3, MaxRetries: 3},
			expected: false,
		},
		{
			name:     "completed never retries",
			cmd:      DeviceCommand{Status: CommandStatusCompleted, RetryCount: 0, MaxRetries: 3},
			expected: false,
		},
		{
			name:     "pending is not a retry candidate",
			cmd:      DeviceCommand{Status: CommandStatusPending, RetryCount: 0, MaxRetries: 3},
			expected: false,
		},
		{
			name:     "cancelled never retries",
			cmd:      DeviceCommand{Status: CommandStatusCancelled, RetryCount: 0, MaxRetries: 3},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.CanRetry())
		})
	}
}

func TestCommandValidate(t *testing.T) {
	valid := DeviceCommand{DeviceID: "site-1:inv-01", CommandType: "set_power_mode"}
	require.NoError(t, valid.Validate())

	missingDevice := DeviceCommand{CommandType: "set_power_mode"}
	assert.ErrorIs(t, missingDevice.Validate(), errCommandDeviceRequired)

	missingType := DeviceCommand{DeviceID: "site-1:inv-01"}
	assert.ErrorIs(t, missingType.Validate(), errCommandTypeRequired)
}
