package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	cipher, err := NewCipher("test-installation-secret")
	require.NoError(t, err)

	tests := []string{
		"r8_abc123",
		"",
		"key with spaces and unicode ✓",
		strings.Repeat("x", 4096),
	}
	for _, plaintext := range tests {
		encrypted, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotContains(t, encrypted, plaintext)

		decrypted, err := cipher.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipher_CiphertextFormat(t *testing.T) {
	cipher, err := NewCipher("test-secret")
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("hello")
	require.NoError(t, err)

	parts := strings.Split(encrypted, ":")
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 24) // 12-byte GCM nonce, hex
	assert.Len(t, parts[1], 32) // 16-byte auth tag, hex
}

func TestCipher_UniqueIVPerEncryption(t *testing.T) {
	cipher, err := NewCipher("test-secret")
	require.NoError(t, err)

	first, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_MalformedCiphertext(t *testing.T) {
	cipher, err := NewCipher("test-secret")
	require.NoError(t, err)

	tests := []string{
		"",
		"not-hex-at-all",
		"aabb:ccdd",
		"zz:zz:zz",
		"aabb:ccdd:eeff:0011",
		"aabbccddeeff:ccdd:eeff", // nonce wrong length
	}
	for _, in := range tests {
		_, err := cipher.Decrypt(in)
		assert.ErrorIs(t, err, ErrMalformedCiphertext, "input %q", in)
	}
}

func TestCipher_WrongKeyFailsAuthentication(t *testing.T) {
	a, err := NewCipher("secret-a")
	require.NoError(t, err)
	b, err := NewCipher("secret-b")
	require.NoError(t, err)

	encrypted, err := a.Encrypt("credential")
	require.NoError(t, err)

	_, err = b.Decrypt(encrypted)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedCiphertext)
}

func TestCipher_TamperedCiphertextFailsAuthentication(t *testing.T) {
	cipher, err := NewCipher("test-secret")
	require.NoError(t, err)

	encrypted, err := cipher.Encrypt("credential")
	require.NoError(t, err)

	// Flip a hex digit in the ciphertext section.
	tampered := []byte(encrypted)
	last := len(tampered) - 1
	if tampered[last] == '0' {
		tampered[last] = '1'
	} else {
		tampered[last] = '0'
	}

	_, err = cipher.Decrypt(string(tampered))
	require.Error(t, err)
}

func TestNewCipher_EmptySecret(t *testing.T) {
	_, err := NewCipher("")
	require.Error(t, err)
}

func TestGenerateAPIKey(t *testing.T) {
	first, err := GenerateAPIKey()
	require.NoError(t, err)
	second, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "mf_"))
	assert.Len(t, first, 3+64) // "mf_" + 32 bytes hex
	assert.NotEqual(t, first, second)
}

func TestHashAPIKey_Deterministic(t *testing.T) {
	key := "mf_0123456789abcdef"

	assert.Equal(t, HashAPIKey(key), HashAPIKey(key))
	assert.NotEqual(t, HashAPIKey(key), HashAPIKey(key+"x"))
	assert.Len(t, HashAPIKey(key), 64)
	assert.NotContains(t, HashAPIKey(key), key)
}

func TestAPIKeyPrefix(t *testing.T) {
	assert.Equal(t, "mf_01234", APIKeyPrefix("mf_0123456789"))
	assert.Equal(t, "short", APIKeyPrefix("short"))
}
