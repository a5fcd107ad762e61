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

func TestSignVerifyRoundTrip(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })

	svc, _ := newTestAuth(t)

	body := []byte(`{"metric":"pv_power_w","value":5000}`)
	ts := fixed.Unix()

	sig, err := svc.SignRequest("site-1:inv-01", ts, body)
	require.NoError(t, err)

	require.NoError(t, svc.VerifySignature("site-1:inv-01", ts, body, sig))
}

func TestVerifySignatureCanonicalString(t *testing.T) {
	svc, _ := newTestAuth(t)

	// The signature covers "<timestamp>:<body>" as one string.
	body := []byte("hello")
	ts := int64(1748779200)

	secret, err := svc.deviceSecret("site-1:inv-01")
	require.NoError(t, err)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte("1748779200:hello"))
	expected := hex.EncodeToString(mac.Sum(nil))

	sig, err := svc.SignRequest("site-1:inv-01", ts, body)
	require.NoError(t, err)

	assert.Equal(t, expected, sig)
}

func TestVerifySignatureRejectsSkew(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })

	svc, _ := newTestAuth(t)

	body := []byte("payload")

	// One second beyond the default sixty-second window, both directions.
	stale := fixed.Add(-61 * time.Second).Unix()

	sig, err := svc.SignRequest("site-1:inv-01", stale, body)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifySignature("site-1:inv-01", stale, body, sig), ErrTimestampSkew)

	ahead := fixed.Add(61 * time.Second).Unix()

	sig, err = svc.SignRequest("site-1:inv-01", ahead, body)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifySignature("site-1:inv-01", ahead, body, sig), ErrTimestampSkew)

	// Exactly at the boundary is still accepted.
	edge := fixed.Add(-60 * time.Second).Unix()

	sig, err = svc.SignRequest("site-1:inv-01", edge, body)
	require.NoError(t, err)
	assert.NoError(t, svc.VerifySignature("site-1:inv-01", edge, body, sig))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	original := nowUTC
	nowUTC = func() time.Time { return fixed }

	t.Cleanup(func() { nowUTC = original })

	svc, _ := newTestAuth(t)

	ts := fixed.Unix()

	sig, err := svc.SignRequest("site-1:inv-01", ts, []byte("original"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifySignature("site-1:inv-01", ts, []byte("tampered"), sig), ErrSignatureInvalid)
	assert.ErrorIs(t, svc.VerifySignature("site-1:inv-01", ts, []byte("original"), "not-hex"), ErrSignatureInvalid)
	assert.ErrorIs(t, svc.VerifySignature("site-1:bat-02", ts, []byte("original"), sig), ErrSignatureInvalid,
		"signature is bound to the device id")
}

func TestDeviceSecretsAreDeterministicPerDevice(t *testing.T) {
	svc, _ := newTestAuth(t)

	first, err := svc.deviceSecret("site-1:inv-01")
	require.NoError(t, err)

	again, err := svc.deviceSecret("site-1:inv-01")
	require.NoError(t, err)

	other, err := svc.deviceSecret("site-1:bat-02")
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, deviceSecretBytes)
}

func TestSigningRequiresMasterKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := testAuthConfig(t)
	cfg.SigningMasterKey = ""

	svc := NewAuth(registry.NewMockManager(ctrl), cfg, logger.NewTestLogger())

	_, err := svc.SignRequest("site-1:inv-01", time.Now().Unix(), []byte("x"))
	assert.ErrorIs(t, err, ErrSigningNotConfigured)

	err = svc.VerifySignature("site-1:inv-01", time.Now().Unix(), []byte("x"), "00")
	assert.ErrorIs(t, err, ErrSigningNotConfigured)
}
