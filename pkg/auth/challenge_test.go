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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/registry"
)

// answerChallenge computes what a correctly provisioned device would send
// back: the hex HMAC-SHA-256 of the challenge under its derived secret.
func answerChallenge(t *testing.T, svc *Auth, deviceID, challenge string) string {
	t.Helper()

	secret, err := svc.deviceSecret(deviceID)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(challenge))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestChallengeRoundTrip(t *testing.T) {
	svc, _ := newTestAuth(t)

	challenge, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)
	assert.Len(t, challenge, 64, "256 bits hex-encoded")

	_, err = hex.DecodeString(challenge)
	require.NoError(t, err)

	err = svc.VerifyChallenge("site-1:inv-01", answerChallenge(t, svc, "site-1:inv-01", challenge))
	require.NoError(t, err)

	// Single use: the same answer cannot be replayed.
	err = svc.VerifyChallenge("site-1:inv-01", answerChallenge(t, svc, "site-1:inv-01", challenge))
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeValuesAreUnique(t *testing.T) {
	svc, _ := newTestAuth(t)

	first, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	second, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestChallengeWrongAnswerIsConsumed(t *testing.T) {
	svc, _ := newTestAuth(t)

	challenge, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	err = svc.VerifyChallenge("site-1:inv-01", "deadbeef")
	assert.ErrorIs(t, err, ErrChallengeInvalid)

	// The failed attempt burned the challenge; the right answer is now
	// too late.
	err = svc.VerifyChallenge("site-1:inv-01", answerChallenge(t, svc, "site-1:inv-01", challenge))
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestChallengeFailuresFeedLockout(t *testing.T) {
	svc, _ := newTestAuth(t)

	for i := 0; i < 5; i++ {
		_, err := svc.GenerateChallenge("site-1:inv-01")
		require.NoError(t, err)

		err = svc.VerifyChallenge("site-1:inv-01", "deadbeef")
		assert.ErrorIs(t, err, ErrChallengeInvalid)
	}

	_, err := svc.GenerateChallenge("site-1:inv-01")
	assert.ErrorIs(t, err, ErrLockedOut)
}

func TestChallengeExpires(t *testing.T) {
	start := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	current := start

	original := nowUTC
	nowUTC = func() time.Time { return current }

	t.Cleanup(func() { nowUTC = original })

	svc, _ := newTestAuth(t)

	challenge, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	current = start.Add(5 * time.Minute)

	err = svc.VerifyChallenge("site-1:inv-01", answerChallenge(t, svc, "site-1:inv-01", challenge))
	assert.ErrorIs(t, err, ErrChallengeExpired)
}

func TestChallengeReplacedByNewerOne(t *testing.T) {
	svc, _ := newTestAuth(t)

	stale, err := svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	_, err = svc.GenerateChallenge("site-1:inv-01")
	require.NoError(t, err)

	err = svc.VerifyChallenge("site-1:inv-01", answerChallenge(t, svc, "site-1:inv-01", stale))
	assert.ErrorIs(t, err, ErrChallengeInvalid)
}

func TestChallengeRequiresMasterKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := testAuthConfig(t)
	cfg.SigningMasterKey = ""

	svc := NewAuth(registry.NewMockManager(ctrl), cfg, logger.NewTestLogger())

	_, err := svc.GenerateChallenge("site-1:inv-01")
	assert.ErrorIs(t, err, ErrSigningNotConfigured)
}
