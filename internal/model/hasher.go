package model

// PasswordHasher derives and checks salted password digests.
type PasswordHasher interface {
	NewSalt() ([]byte, error)
	Hash(password string, salt []byte) []byte
	Verify(password string, salt, digest []byte) bool
}
