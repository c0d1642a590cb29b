// Package hasher derives salted password digests with Argon2id.
package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of generated salts in bytes.
	SaltSize = 16
	keyLen   = 32
)

// Params are the Argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// DefaultParams returns the recommended interactive cost parameters.
func DefaultParams() Params {
	return Params{Time: 1, MemKiB: 64 * 1024, Par: 4}
}

// Argon2 hashes passwords with a fixed set of Argon2id parameters.
type Argon2 struct {
	params Params
}

// New creates an Argon2 hasher. Zero fields fall back to DefaultParams.
func New(params Params) *Argon2 {
	def := DefaultParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemKiB == 0 {
		params.MemKiB = def.MemKiB
	}
	if params.Par == 0 {
		params.Par = def.Par
	}
	return &Argon2{params: params}
}

// NewSalt returns SaltSize random bytes.
func (h *Argon2) NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Hash returns the digest of password under salt. Equal inputs give equal digests.
func (h *Argon2) Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemKiB, h.params.Par, keyLen)
}

// Verify recomputes the digest and compares it in constant time.
func (h *Argon2) Verify(password string, salt, digest []byte) bool {
	return subtle.ConstantTimeCompare(h.Hash(password, salt), digest) == 1
}
