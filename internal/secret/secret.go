// Package secret encrypts stored credential passwords with a per-record key.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrMalformed is returned when a stored key or ciphertext cannot be decoded.
var ErrMalformed = errors.New("malformed secret")

// Sealed is an encrypted value together with the key that opens it.
// Both fields are base64 encoded for storage in text columns.
type Sealed struct {
	Key        string
	Ciphertext string
}

// Seal encrypts plaintext under a freshly generated key.
// The nonce is prepended to the ciphertext.
func Seal(plaintext string) (Sealed, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return Sealed{}, fmt.Errorf("failed to generate key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return Sealed{}, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return Sealed{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return Sealed{
		Key:        base64.StdEncoding.EncodeToString(key),
		Ciphertext: base64.StdEncoding.EncodeToString(out),
	}, nil
}

// Open decrypts a value produced by Seal.
func Open(s Sealed) (string, error) {
	key, err := base64.StdEncoding.DecodeString(s.Key)
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return "", ErrMalformed
	}
	data, err := base64.StdEncoding.DecodeString(s.Ciphertext)
	if err != nil {
		return "", ErrMalformed
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	if len(data) < aead.NonceSize() {
		return "", ErrMalformed
	}

	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}
