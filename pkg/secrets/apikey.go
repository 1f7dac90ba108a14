package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// APIKeyPrefixLen is how many characters of a key are stored for display.
const APIKeyPrefixLen = 8

// GenerateAPIKey returns a new bearer key: "mf_" + 32 bytes of entropy, hex.
func GenerateAPIKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return "mf_" + hex.EncodeToString(raw), nil
}

// HashAPIKey returns the SHA-256 hex digest used for key lookup.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// APIKeyPrefix returns the display prefix of a key, e.g. "mf_1a2b".
func APIKeyPrefix(key string) string {
	if len(key) <= APIKeyPrefixLen {
		return key
	}
	return key[:APIKeyPrefixLen]
}
