// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password. Every call uses a fresh salt.
	Hash(password string) (string, error)

	// Compare reports whether password matches storedHash.
	// A storedHash that cannot be parsed yields domainerrors.ErrMalformedHash.
	Compare(storedHash, password string) (bool, error)
}
