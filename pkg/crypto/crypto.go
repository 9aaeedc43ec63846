package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"github.com/google/uuid"
)

// ComputeHMAC256 returns the hex-encoded HMAC-SHA256 of the payload.
func ComputeHMAC256(payload []byte, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// ComputeHMAC256Base64 returns the base64-encoded HMAC-SHA256 of the payload.
// The scheduling provider signs webhook bodies this way.
func ComputeHMAC256Base64(payload []byte, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(payload)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// VerifyHMAC256Base64 checks a provider-supplied signature against the exact
// raw bytes of the request body.
func VerifyHMAC256Base64(payload []byte, secretKey, providedSignature string) bool {
	if providedSignature == "" {
		return false
	}
	expected := ComputeHMAC256Base64(payload, secretKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(providedSignature)) == 1
}

// SHA256Hex returns the hex-encoded SHA-256 digest of the input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// RandomID mints an opaque identifier with 128 bits of entropy.
func RandomID() string {
	return uuid.New().String()
}
