package hashutil

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// HashToken computes the peppered SHA-256 digest of a device token and
// returns it as a lowercase hex string. Only the digest is ever stored; the
// plaintext token exists client-side and in the enrollment response.
func HashToken(token, pepper string) string {
	sum := sha256.Sum256([]byte(pepper + token))
	return hex.EncodeToString(sum[:])
}

// VerifyToken reports whether token hashes to storedHash under pepper. The
// stored hash may be hex or base64 encoded; comparison is constant time.
func VerifyToken(token, pepper, storedHash string) bool {
	sum := sha256.Sum256([]byte(pepper + token))
	return EqualSHA256(storedHash, sum)
}

// DecodeSHA256String attempts to decode the provided digest string which may be
// hex-encoded or base64/base64url-encoded. It returns the raw 32-byte digest.
func DecodeSHA256String(s string) ([]byte, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return nil, fmt.Errorf("empty digest string")
	}

	if decoded, err := hex.DecodeString(clean); err == nil {
		return decoded, nil
	}

	// Try several base64 alphabets to accommodate control-plane encodings.
	base64Variants := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}

	for _, enc := range base64Variants {
		if decoded, err := enc.DecodeString(clean); err == nil {
			return decoded, nil
		}
	}

	return nil, fmt.Errorf("unsupported digest encoding")
}

// CanonicalHexSHA256 decodes the input digest and re-encodes it as a
// lowercase hexadecimal string.
func CanonicalHexSHA256(s string) (string, error) {
	decoded, err := DecodeSHA256String(s)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(decoded), nil
}

// EqualSHA256 reports whether the provided digest string (hex or base64)
// matches the supplied SHA-256 digest.
func EqualSHA256(expected string, actual [32]byte) bool {
	decoded, err := DecodeSHA256String(expected)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(decoded, actual[:]) == 1
}
