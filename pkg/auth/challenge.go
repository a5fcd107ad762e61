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
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// challengeBytes is the entropy of an issued challenge.
const challengeBytes = 32

var (
	// ErrChallengeNotFound is returned when a device answers without an
	// outstanding challenge.
	ErrChallengeNotFound = errors.New("no active challenge for device")

	// ErrChallengeExpired is returned when the outstanding challenge aged
	// past its TTL before the device answered.
	ErrChallengeExpired = errors.New("challenge expired")

	// ErrChallengeInvalid is returned when the device's answer does not
	// match.
	ErrChallengeInvalid = errors.New("challenge response invalid")
)

type activeChallenge struct {
	value     string
	expiresAt time.Time
}

// GenerateChallenge issues a 256-bit hex-encoded challenge for the device,
// replacing any outstanding one. A locked-out device does not get a
// challenge at all.
func (a *Auth) GenerateChallenge(deviceID string) (string, error) {
	if a.cfg.SigningMasterKey == "" {
		return "", ErrSigningNotConfigured
	}

	if a.lockouts.lockedOut(deviceID) {
		return "", ErrLockedOut
	}

	raw := make([]byte, challengeBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate challenge: %w", err)
	}

	value := hex.EncodeToString(raw)

	a.challengeMu.Lock()
	a.challenges[deviceID] = activeChallenge{
		value:     value,
		expiresAt: nowUTC().Add(time.Duration(a.cfg.ChallengeTTL)),
	}
	a.challengeMu.Unlock()

	return value, nil
}

// VerifyChallenge checks the device's answer: the hex HMAC-SHA-256 of the
// challenge string under the device's derived secret. The challenge is
// consumed on every attempt, so a wrong answer costs a fresh handshake,
// and failures count toward the device's lockout window.
func (a *Auth) VerifyChallenge(deviceID, response string) error {
	if a.lockouts.lockedOut(deviceID) {
		return ErrLockedOut
	}

	a.challengeMu.Lock()
	ch, ok := a.challenges[deviceID]
	delete(a.challenges, deviceID)
	a.challengeMu.Unlock()

	if !ok {
		return ErrChallengeNotFound
	}

	if !ch.expiresAt.After(nowUTC()) {
		return ErrChallengeExpired
	}

	secret, err := a.deviceSecret(deviceID)
	if err != nil {
		return err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ch.value))
	expected := mac.Sum(nil)

	answer, err := hex.DecodeString(response)
	if err != nil || !hmac.Equal(answer, expected) {
		a.lockouts.recordFailure(deviceID)

		a.logger.Warn().Str("device_id", deviceID).Msg("Challenge response rejected")

		return ErrChallengeInvalid
	}

	a.lockouts.clear(deviceID)

	return nil
}
