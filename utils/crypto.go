package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var fieldAEADKey []byte

// InitFieldCipher derives the sealing key for customer-identifying fields
// from the configured secret. Must be called before any Seal/Open.
func InitFieldCipher(secret string) error {
	if secret == "" {
		return fmt.Errorf("field encryption key is not configured")
	}
	sum := sha256.Sum256([]byte(secret))
	fieldAEADKey = sum[:]
	return nil
}

// SealField encrypts a customer-identifying value for storage. Output is
// base64(nonce || ciphertext).
func SealField(plain string) (string, error) {
	if fieldAEADKey == nil {
		return "", fmt.Errorf("field cipher not initialized")
	}
	aead, err := chacha20poly1305.NewX(fieldAEADKey)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenField decrypts a stored field value. Values are decrypted only
// in-process and never returned raw in API responses.
func OpenField(sealed string) (string, error) {
	if fieldAEADKey == nil {
		return "", fmt.Errorf("field cipher not initialized")
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("malformed sealed field: %v", err)
	}
	aead, err := chacha20poly1305.NewX(fieldAEADKey)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", fmt.Errorf("malformed sealed field: too short")
	}
	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("could not open sealed field: %v", err)
	}
	return string(plain), nil
}

// MaskName returns a display-safe form of a customer name: the first
// character followed by asterisks.
func MaskName(name string) string {
	runes := []rune(name)
	if len(runes) <= 1 {
		return "*"
	}
	masked := string(runes[0])
	for i := 1; i < len(runes); i++ {
		masked += "*"
	}
	return masked
}
