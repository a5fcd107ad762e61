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
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/crypto/hkdf"
)

// deviceSecretBytes is the length of a derived per-device signing secret.
const deviceSecretBytes = 32

// deviceSecretInfo is the HKDF info label that binds a derived secret to
// its device. Changing it invalidates every secret in the field.
const deviceSecretInfo = "solarmesh device secret v1:"

var (
	// ErrSignatureInvalid is returned when a request signature does not
	// match.
	ErrSignatureInvalid = errors.New("request signature invalid")

	// ErrTimestampSkew is returned when a request timestamp falls outside
	// the allowed clock skew, before the signature is examined.
	ErrTimestampSkew = errors.New("request timestamp outside allowed skew")
)

// deviceSecret derives the device's signing secret from the service master
// key via HKDF-SHA-256. Identical inputs always derive the same secret, so
// nothing per-device is stored.
func (a *Auth) deviceSecret(deviceID string) ([]byte, error) {
	if a.cfg.SigningMasterKey == "" {
		return nil, ErrSigningNotConfigured
	}

	kdf := hkdf.New(sha256.New, []byte(a.cfg.SigningMasterKey), nil, []byte(deviceSecretInfo+deviceID))

	secret := make([]byte, deviceSecretBytes)
	if _, err := io.ReadFull(kdf, secret); err != nil {
		return nil, fmt.Errorf("derive device secret: %w", err)
	}

	return secret, nil
}

// SignRequest computes the hex HMAC-SHA-256 signature over
// "<timestamp>:<body>" under the device's derived secret. The timestamp is
// unix seconds.
func (a *Auth) SignRequest(deviceID string, timestamp int64, body []byte) (string, error) {
	secret, err := a.deviceSecret(deviceID)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(signPayload(secret, timestamp, body)), nil
}

// VerifySignature checks a device request signature. The timestamp is
// checked against the clock skew window first, so a replayed request fails
// fast without touching key material.
func (a *Auth) VerifySignature(deviceID string, timestamp int64, body []byte, signature string) error {
	skew := int64(time.Duration(a.cfg.ClockSkew).Seconds())

	if delta := nowUTC().Unix() - timestamp; delta > skew || delta < -skew {
		return ErrTimestampSkew
	}

	secret, err := a.deviceSecret(deviceID)
	if err != nil {
		return err
	}

	presented, err := hex.DecodeString(signature)
	if err != nil || !hmac.Equal(presented, signPayload(secret, timestamp, body)) {
		return ErrSignatureInvalid
	}

	return nil
}

func signPayload(secret []byte, timestamp int64, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte(":"))
	mac.Write(body)

	return mac.Sum(nil)
}
