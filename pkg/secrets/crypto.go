// Package secrets handles encryption of stored credentials and API key
// generation. Plaintext key material must never be logged.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const gcmTagSize = 16

// ErrMalformedCiphertext is returned when stored ciphertext does not match
// the iv:authTag:ciphertext hex format.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// Cipher encrypts and decrypts short secrets with AES-256-GCM.
// The key-encryption key is derived by SHA-256 from an environment secret,
// so ciphertext is self-contained: iv:authTag:ciphertext, hex-encoded.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher derives the KEK from the installation secret and prepares the AEAD.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret must not be empty")
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext and returns iv:authTag:ciphertext in hex.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	// Seal appends the auth tag to the ciphertext; split for the stored format.
	ct := sealed[:len(sealed)-gcmTagSize]
	tag := sealed[len(sealed)-gcmTagSize:]
	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ct)), nil
}

// Decrypt opens an iv:authTag:ciphertext hex string.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 3 {
		return "", ErrMalformedCiphertext
	}
	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != c.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != gcmTagSize {
		return "", ErrMalformedCiphertext
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	plaintext, err := c.aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}
