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
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/heliotrace/solarmesh/pkg/hashutil"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// deviceTokenBytes is the entropy of a freshly issued token. 32 bytes keeps
// the URL-safe encoding at 43 characters.
const deviceTokenBytes = 32

var (
	ErrTokenInvalid         = errors.New("device token invalid")
	ErrTokenExpired         = errors.New("device token expired")
	ErrDeviceDecommissioned = errors.New("device is decommissioned")
)

// GenerateToken mints a fresh URL-safe token for a device and stores its
// peppered SHA-256 digest with an expiry of now plus the configured TTL.
// The plaintext is returned exactly once and never persisted; issuing a new
// token invalidates the previous one.
func (r *DeviceRegistry) GenerateToken(ctx context.Context, deviceID string) (string, error) {
	device, err := r.db.GetDevice(ctx, deviceID)
	if err != nil {
		return "", err
	}

	if device.Decommissioned {
		return "", ErrDeviceDecommissioned
	}

	raw := make([]byte, deviceTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(raw)
	expiresAt := nowUTC().Add(time.Duration(r.auth.TokenTTL))

	if err := r.db.SetDeviceToken(ctx, deviceID, hashutil.HashToken(token, r.auth.TokenPepper), expiresAt); err != nil {
		return "", err
	}

	r.logger.Info().
		Str("device_id", deviceID).
		Time("expires_at", expiresAt).
		Msg("Device token issued")

	return token, nil
}

// ValidateToken checks a presented token against the stored digest in
// constant time. Expiry is checked before the digest so an expired token
// reports as expired, not merely invalid.
func (r *DeviceRegistry) ValidateToken(ctx context.Context, deviceID, token string) error {
	device, err := r.db.GetDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	return r.checkDeviceToken(device, token)
}

// RevokeToken clears the stored digest immediately. The device must
// re-enroll to authenticate again.
func (r *DeviceRegistry) RevokeToken(ctx context.Context, deviceID string) error {
	if err := r.db.ClearDeviceToken(ctx, deviceID); err != nil {
		return err
	}

	r.logger.Info().Str("device_id", deviceID).Msg("Device token revoked")

	return nil
}

// AuthenticateBySerial resolves a device by serial number and validates the
// presented token. On success the device row is returned so callers can
// proceed without a second lookup.
func (r *DeviceRegistry) AuthenticateBySerial(ctx context.Context, serial, token string) (*models.Device, error) {
	device, err := r.db.GetDeviceBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}

	if err := r.checkDeviceToken(device, token); err != nil {
		return nil, err
	}

	return device, nil
}

func (r *DeviceRegistry) checkDeviceToken(device *models.Device, token string) error {
	if device.Decommissioned {
		return ErrDeviceDecommissioned
	}

	if device.TokenHash == "" || token == "" {
		return ErrTokenInvalid
	}

	if device.TokenExpiresAt != nil && !device.TokenExpiresAt.After(nowUTC()) {
		return ErrTokenExpired
	}

	if !hashutil.VerifyToken(token, r.auth.TokenPepper, device.TokenHash) {
		return ErrTokenInvalid
	}

	return nil
}
