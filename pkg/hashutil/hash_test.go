package hashutil

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	hash := HashToken("device-token", "pepper")

	require.Len(t, hash, 64, "hash should be hex-encoded SHA-256")
	assert.Equal(t, hash, HashToken("device-token", "pepper"), "hashing is deterministic")
	assert.NotEqual(t, hash, HashToken("device-token", "other-pepper"), "pepper changes the digest")
	assert.NotEqual(t, hash, HashToken("other-token", "pepper"))
}

func TestVerifyToken(t *testing.T) {
	hash := HashToken("device-token", "pepper")

	assert.True(t, VerifyToken("device-token", "pepper", hash))
	assert.False(t, VerifyToken("wrong-token", "pepper", hash))
	assert.False(t, VerifyToken("device-token", "wrong-pepper", hash))
	assert.False(t, VerifyToken("device-token", "pepper", "not*a*digest"))
}

func TestVerifyTokenAcceptsBase64Hashes(t *testing.T) {
	sum := sha256.Sum256([]byte("pepper" + "device-token"))
	encoded := base64.StdEncoding.EncodeToString(sum[:])

	assert.True(t, VerifyToken("device-token", "pepper", encoded))
}

func TestDecodeSHA256String(t *testing.T) {
	payload := []byte("solarmesh")
	sum := sha256.Sum256(payload)

	cases := []struct {
		name       string
		input      string
		wantHex    string
		shouldFail bool
	}{
		{
			name:    "hex lowercase",
			input:   hex.EncodeToString(sum[:]),
			wantHex: hex.EncodeToString(sum[:]),
		},
		{
			name:    "hex uppercase",
			input:   strings.ToUpper(hex.EncodeToString(sum[:])),
			wantHex: hex.EncodeToString(sum[:]),
		},
		{
			name:    "base64 standard",
			input:   base64.StdEncoding.EncodeToString(sum[:]),
			wantHex: hex.EncodeToString(sum[:]),
		},
		{
			name:    "base64 url",
			input:   base64.URLEncoding.EncodeToString(sum[:]),
			wantHex: hex.EncodeToString(sum[:]),
		},
		{
			name:       "unsupported encoding",
			input:      "not*valid*digest",
			shouldFail: true,
		},
		{
			name:       "empty",
			input:      "   ",
			shouldFail: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := DecodeSHA256String(tc.input)
			if tc.shouldFail {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantHex, hex.EncodeToString(decoded))
		})
	}
}

func TestCanonicalHexSHA256(t *testing.T) {
	sum := sha256.Sum256([]byte("solarmesh"))

	canonical, err := CanonicalHexSHA256(base64.RawURLEncoding.EncodeToString(sum[:]))
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(sum[:]), canonical)
}

func TestEqualSHA256(t *testing.T) {
	sum := sha256.Sum256([]byte("solarmesh"))

	assert.True(t, EqualSHA256(hex.EncodeToString(sum[:]), sum))
	assert.False(t, EqualSHA256(hex.EncodeToString(sum[:])+"00", sum))
	assert.False(t, EqualSHA256("", sum))
}
