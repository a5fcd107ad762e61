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

// Package auth guards device authentication. Credential checks delegate to
// the device registry; this layer rejects locked-out identities before
// credentials are examined, so a correct token presented during a lockout
// still fails.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
	"github.com/heliotrace/solarmesh/pkg/registry"
)

var (
	// ErrLockedOut is returned while an identity's failure budget is
	// exhausted, regardless of whether the presented credentials are
	// correct.
	ErrLockedOut = errors.New("too many failed attempts")

	// ErrSigningNotConfigured is returned when challenge or signature
	// operations run without a signing master key.
	ErrSigningNotConfigured = errors.New("signing master key not configured")
)

var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// Auth is the concrete Service over the device registry.
type Auth struct {
	registry registry.Manager
	cfg      *models.AuthConfig
	logger   logger.Logger

	lockouts *lockoutTracker

	challengeMu sync.Mutex
	challenges  map[string]activeChallenge
}

// NewAuth creates the auth service. The config must already be validated.
func NewAuth(reg registry.Manager, cfg *models.AuthConfig, log logger.Logger) *Auth {
	return &Auth{
		registry:   reg,
		cfg:        cfg,
		logger:     log,
		lockouts:   newLockoutTracker(cfg.MaxFailures, time.Duration(cfg.LockoutWindow)),
		challenges: make(map[string]activeChallenge),
	}
}

// AuthenticateBySerial authenticates a device by serial number and token.
// Failures count toward the serial's lockout window; a success clears it.
func (a *Auth) AuthenticateBySerial(ctx context.Context, serial, token string) (*models.Device, error) {
	if a.lockouts.lockedOut(serial) {
		a.logger.Warn().Str("serial", serial).Msg("Authentication rejected by lockout")
		return nil, ErrLockedOut
	}

	device, err := a.registry.AuthenticateBySerial(ctx, serial, token)
	if err != nil {
		if isCredentialErr(err) {
			a.lockouts.recordFailure(serial)
		}

		return nil, err
	}

	a.lockouts.clear(serial)

	return device, nil
}

// ValidateToken checks a token for a known device id with the same lockout
// behavior, keyed by device id.
func (a *Auth) ValidateToken(ctx context.Context, deviceID, token string) error {
	if a.lockouts.lockedOut(deviceID) {
		a.logger.Warn().Str("device_id", deviceID).Msg("Token validation rejected by lockout")
		return ErrLockedOut
	}

	if err := a.registry.ValidateToken(ctx, deviceID, token); err != nil {
		if isCredentialErr(err) {
			a.lockouts.recordFailure(deviceID)
		}

		return err
	}

	a.lockouts.clear(deviceID)

	return nil
}

// GenerateToken mints a fresh device token via the registry.
func (a *Auth) GenerateToken(ctx context.Context, deviceID string) (string, error) {
	return a.registry.GenerateToken(ctx, deviceID)
}

// RevokeToken clears the device's token via the registry.
func (a *Auth) RevokeToken(ctx context.Context, deviceID string) error {
	return a.registry.RevokeToken(ctx, deviceID)
}

// TokenStatus reports token and lockout state for a device. Lockout is
// tracked per presented identity, so both the device id and its serial are
// consulted and the worse one wins.
func (a *Auth) TokenStatus(ctx context.Context, deviceID string) (*models.TokenStatus, error) {
	device, err := a.registry.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	status := &models.TokenStatus{
		DeviceID: device.ID,
		HasToken: device.TokenHash != "",
	}

	if device.TokenExpiresAt != nil {
		expiry := *device.TokenExpiresAt
		status.TokenExpiresAt = &expiry
		status.TokenExpired = !expiry.After(nowUTC())
	}

	failures, unlocksAt := a.lockouts.status(device.ID)

	if device.SerialNumber != "" {
		serialFailures, serialUnlocks := a.lockouts.status(device.SerialNumber)

		if serialFailures > failures {
			failures = serialFailures
			unlocksAt = serialUnlocks
		}
	}

	status.FailedAttempts = failures
	status.LockedOut = unlocksAt != nil
	status.UnlocksAt = unlocksAt

	return status, nil
}

// Sweep prunes aged-out lockout entries and expired challenges.
func (a *Auth) Sweep() (int, int) {
	lockouts := a.lockouts.sweep()

	now := nowUTC()
	challenges := 0

	a.challengeMu.Lock()

	for deviceID, ch := range a.challenges {
		if !ch.expiresAt.After(now) {
			delete(a.challenges, deviceID)
			challenges++
		}
	}

	a.challengeMu.Unlock()

	if lockouts > 0 || challenges > 0 {
		a.logger.Debug().
			Int("lockouts", lockouts).
			Int("challenges", challenges).
			Msg("Pruned auth state")
	}

	return lockouts, challenges
}

// isCredentialErr separates failures that should count against the
// identity from transient store errors that should not.
func isCredentialErr(err error) bool {
	return errors.Is(err, registry.ErrTokenInvalid) ||
		errors.Is(err, registry.ErrTokenExpired) ||
		errors.Is(err, registry.ErrDeviceDecommissioned) ||
		errors.Is(err, db.ErrDeviceNotFound)
}
