package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHMAC256(t *testing.T) {
	sig := ComputeHMAC256([]byte("payload"), "secret")
	assert.Len(t, sig, 64)
	// Deterministic for identical input
	assert.Equal(t, sig, ComputeHMAC256([]byte("payload"), "secret"))
	// Different key changes the signature
	assert.NotEqual(t, sig, ComputeHMAC256([]byte("payload"), "other"))
}

func TestVerifyHMAC256Base64(t *testing.T) {
	body := []byte("action=scheduled&id=123")
	secret := "acuity-api-key"

	sig := ComputeHMAC256Base64(body, secret)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, VerifyHMAC256Base64(body, secret, sig))
	})

	t.Run("tampered body", func(t *testing.T) {
		assert.False(t, VerifyHMAC256Base64([]byte("action=canceled&id=123"), secret, sig))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, VerifyHMAC256Base64(body, "wrong", sig))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifyHMAC256Base64(body, secret, ""))
	})
}

func TestSHA256Hex(t *testing.T) {
	// Known vector for the empty string
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		SHA256Hex(""))
	assert.Len(t, SHA256Hex("anything"), 64)
}

func TestRandomID(t *testing.T) {
	a := RandomID()
	b := RandomID()
	require.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
