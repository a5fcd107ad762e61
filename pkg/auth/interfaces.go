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

//go:generate mockgen -destination=mock_auth.go -package=auth github.com/heliotrace/solarmesh/pkg/auth Service

import (
	"context"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Service authenticates devices. Token storage and verification live in
// the device registry; this layer adds per-identity lockout, the
// challenge/response handshake, and HMAC request signing.
type Service interface {
	// AuthenticateBySerial resolves and authenticates a device by serial
	// number. A locked-out serial is rejected before credentials are
	// looked at.
	AuthenticateBySerial(ctx context.Context, serial, token string) (*models.Device, error)

	// ValidateToken checks a presented token for a known device id, with
	// the same lockout behavior.
	ValidateToken(ctx context.Context, deviceID, token string) error

	// GenerateToken mints a fresh device token. The plaintext is returned
	// exactly once.
	GenerateToken(ctx context.Context, deviceID string) (string, error)

	// RevokeToken clears the device's stored token immediately.
	RevokeToken(ctx context.Context, deviceID string) error

	// GenerateChallenge issues a single-use 256-bit hex challenge for the
	// device, replacing any outstanding one.
	GenerateChallenge(deviceID string) (string, error)

	// VerifyChallenge checks the device's HMAC answer to its outstanding
	// challenge. The challenge is consumed whatever the outcome.
	VerifyChallenge(deviceID, response string) error

	// SignRequest computes the hex signature for a device API request.
	SignRequest(deviceID string, timestamp int64, body []byte) (string, error)

	// VerifySignature checks a device API request signature, rejecting
	// timestamps outside the allowed clock skew.
	VerifySignature(deviceID string, timestamp int64, body []byte, signature string) error

	// TokenStatus reports token presence, expiry, and lockout state for
	// operator diagnostics.
	TokenStatus(ctx context.Context, deviceID string) (*models.TokenStatus, error)

	// Sweep prunes aged-out lockout entries and expired challenges,
	// returning how many of each it removed.
	Sweep() (lockouts, challenges int)
}
