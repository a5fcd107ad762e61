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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
	"github.com/heliotrace/solarmesh/pkg/registry"
)

func testAuthConfig(t *testing.T) *models.AuthConfig {
	t.Helper()

	cfg := &models.AuthConfig{SigningMasterKey: "test-master-key"}
	require.NoError(t, cfg.Validate())

	return cfg
}

func newTestAuth(t *testing.T) (*Auth, *registry.MockManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reg := registry.NewMockManager(ctrl)

	return NewAuth(reg, testAuthConfig(t), logger.NewTestLogger()), reg
}

func testDevice() *models.Device {
	return &models.Device{
		ID:           "site-1:inv-01",
		SerialNumber: "SN-INV-01",
		SiteID:       "site-1",
	}
}

func TestAuthenticateBySerialSuccess(t *testing.T) {
	svc, reg := newTestAuth(t)

	device := testDevice()

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "token-1").
		Return(device, nil)

	got, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "token-1")
	require.NoError(t, err)
	assert.Same(t, device, got)
}

func TestAuthenticateBySerialLocksOutAfterBudget(t *testing.T) {
	svc, reg := newTestAuth(t)

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "wrong").
		Return(nil, registry.ErrTokenInvalid).
		Times(5)

	for i := 0; i < 5; i++ {
		_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "wrong")
		assert.ErrorIs(t, err, registry.ErrTokenInvalid)
	}

	// The budget is spent: even correct credentials are rejected without
	// reaching the registry.
	_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "correct")
	assert.ErrorIs(t, err, ErrLockedOut)
}

func TestAuthenticateBySerialLockoutExpiresWithWindow(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	current := start

	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	svc, reg := newTestAuth(t)

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "wrong").
		Return(nil, registry.ErrTokenInvalid).
		Times(5)

	for i := 0; i < 5; i++ {
		_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "wrong")
		assert.ErrorIs(t, err, registry.ErrTokenInvalid)
	}

	_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "correct")
	require.ErrorIs(t, err, ErrLockedOut)

	current = start.Add(30 * time.Minute)

	device := testDevice()

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "correct").
		Return(device, nil)

	got, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "correct")
	require.NoError(t, err)
	assert.Same(t, device, got)
}

func TestAuthenticateBySerialSuccessClearsFailures(t *testing.T) {
	svc, reg := newTestAuth(t)

	device := testDevice()

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "wrong").
		Return(nil, registry.ErrTokenInvalid).
		Times(4)

	for i := 0; i < 4; i++ {
		_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "wrong")
		assert.ErrorIs(t, err, registry.ErrTokenInvalid)
	}

	reg.EXPECT().GetByID(gomock.Any(), "site-1:inv-01").Return(device, nil)

	status, err := svc.TokenStatus(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, 4, status.FailedAttempts)
	assert.False(t, status.LockedOut)

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "correct").
		Return(device, nil)

	_, err = svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "correct")
	require.NoError(t, err)

	reg.EXPECT().GetByID(gomock.Any(), "site-1:inv-01").Return(device, nil)

	status, err = svc.TokenStatus(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Zero(t, status.FailedAttempts)
}

func TestValidateTokenTransientErrorsDoNotCount(t *testing.T) {
	svc, reg := newTestAuth(t)

	storeDown := errors.New("connection reset")

	reg.EXPECT().
		ValidateToken(gomock.Any(), "site-1:inv-01", "token-1").
		Return(storeDown).
		Times(6)

	// Six transient store failures never trip the five-failure budget.
	for i := 0; i < 6; i++ {
		err := svc.ValidateToken(context.Background(), "site-1:inv-01", "token-1")
		assert.ErrorIs(t, err, storeDown)
	}
}

func TestValidateTokenCountsCredentialFailures(t *testing.T) {
	svc, reg := newTestAuth(t)

	reg.EXPECT().
		ValidateToken(gomock.Any(), "site-1:inv-01", "stale").
		Return(registry.ErrTokenExpired).
		Times(5)

	for i := 0; i < 5; i++ {
		err := svc.ValidateToken(context.Background(), "site-1:inv-01", "stale")
		assert.ErrorIs(t, err, registry.ErrTokenExpired)
	}

	err := svc.ValidateToken(context.Background(), "site-1:inv-01", "stale")
	assert.ErrorIs(t, err, ErrLockedOut)
}

func TestTokenStatusReportsExpiredToken(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })

	svc, reg := newTestAuth(t)

	expiry := fixed.Add(-time.Hour)
	device := testDevice()
	device.TokenHash = "digest"
	device.TokenExpiresAt = &expiry

	reg.EXPECT().GetByID(gomock.Any(), "site-1:inv-01").Return(device, nil)

	status, err := svc.TokenStatus(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	assert.True(t, status.HasToken)
	assert.True(t, status.TokenExpired)
	require.NotNil(t, status.TokenExpiresAt)
	assert.Equal(t, expiry, *status.TokenExpiresAt)
	assert.False(t, status.LockedOut)
	assert.Nil(t, status.UnlocksAt)
}

func TestTokenStatusWorstIdentityWins(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })

	svc, reg := newTestAuth(t)

	// Failures accumulate under the serial, not the device id.
	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "wrong").
		Return(nil, registry.ErrTokenInvalid).
		Times(5)

	for i := 0; i < 5; i++ {
		_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "wrong")
		assert.ErrorIs(t, err, registry.ErrTokenInvalid)
	}

	reg.EXPECT().GetByID(gomock.Any(), "site-1:inv-01").Return(testDevice(), nil)

	status, err := svc.TokenStatus(context.Background(), "site-1:inv-01")
	require.NoError(t, err)

	assert.True(t, status.LockedOut)
	assert.Equal(t, 5, status.FailedAttempts)
	require.NotNil(t, status.UnlocksAt)
	assert.Equal(t, fixed.Add(30*time.Minute), *status.UnlocksAt)
}

func TestSweepPrunesAgedState(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	current := start

	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	svc, reg := newTestAuth(t)

	reg.EXPECT().
		AuthenticateBySerial(gomock.Any(), "SN-INV-01", "wrong").
		Return(nil, registry.ErrTokenInvalid)

	_, err := svc.AuthenticateBySerial(context.Background(), "SN-INV-01", "wrong")
	require.ErrorIs(t, err, registry.ErrTokenInvalid)

	_, err = svc.GenerateChallenge("site-1:bat-01")
	require.NoError(t, err)

	lockouts, challenges := svc.Sweep()
	assert.Zero(t, lockouts)
	assert.Zero(t, challenges)

	current = start.Add(time.Hour)

	lockouts, challenges = svc.Sweep()
	assert.Equal(t, 1, lockouts)
	assert.Equal(t, 1, challenges)

	err = svc.VerifyChallenge("site-1:bat-01", "deadbeef")
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestGenerateAndRevokeTokenDelegate(t *testing.T) {
	svc, reg := newTestAuth(t)

	reg.EXPECT().GenerateToken(gomock.Any(), "site-1:inv-01").Return("plaintext", nil)

	token, err := svc.GenerateToken(context.Background(), "site-1:inv-01")
	require.NoError(t, err)
	assert.Equal(t, "plaintext", token)

	reg.EXPECT().RevokeToken(gomock.Any(), "site-1:inv-01").Return(nil)

	require.NoError(t, svc.RevokeToken(context.Background(), "site-1:inv-01"))
}
