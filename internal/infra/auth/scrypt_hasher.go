// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"

	"partnerauth/config"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptKeyLen  = 64
	saltLen       = 16
	minSaltLen    = 8
	hashDelimiter = "."
)

// scryptHasher implements service.PasswordHasher with scrypt.
// Stored format is hex(key) "." hexSalt, and the hex text of the salt is what feeds scrypt.
type scryptHasher struct {
	n      int       // CPU/memory cost, power of two.
	r      int       // Block size.
	p      int       // Parallelization.
	random io.Reader // Salt source.
}

// NewScryptHasher builds the hasher from auth.scrypt.
func NewScryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	return NewScryptHasherWithParams(cfg.Auth.Scrypt.N, cfg.Auth.Scrypt.R, cfg.Auth.Scrypt.P)
}

// NewScryptHasherWithParams builds a hasher with explicit cost parameters.
func NewScryptHasherWithParams(n, r, p int) (service.PasswordHasher, error) {
	if n <= 1 || n&(n-1) != 0 {
		return nil, errors.Errorf("scrypt N must be a power of two greater than 1, got %d", n)
	}
	if r <= 0 || p <= 0 {
		return nil, errors.Errorf("scrypt r and p must be positive, got r=%d p=%d", r, p)
	}

	return &scryptHasher{n: n, r: r, p: p, random: rand.Reader}, nil
}

// Hash derives a 64-byte key under a fresh random salt.
func (h *scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, "read salt: "+err.Error())
	}
	hexSalt := hex.EncodeToString(salt)

	key, err := h.derive(password, hexSalt)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key) + hashDelimiter + hexSalt, nil
}

// Compare re-derives the key with the stored salt. The full derivation always runs.
func (h *scryptHasher) Compare(storedHash, password string) (bool, error) {
	storedKey, hexSalt, err := splitStoredHash(storedHash)
	if err != nil {
		return false, err
	}

	key, err := h.derive(password, hexSalt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}

func (h *scryptHasher) derive(password, hexSalt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(hexSalt), h.n, h.r, h.p, scryptKeyLen)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "scrypt: "+err.Error())
	}

	return key, nil
}

func splitStoredHash(storedHash string) (key []byte, hexSalt string, err error) {
	keyHex, hexSalt, found := strings.Cut(storedHash, hashDelimiter)
	if !found || strings.Contains(hexSalt, hashDelimiter) {
		return nil, "", domainerrors.ErrMalformedHash.WrapMessage("expected exactly one delimiter")
	}

	key, decodeErr := hex.DecodeString(keyHex)
	if decodeErr != nil || len(key) != scryptKeyLen {
		return nil, "", domainerrors.ErrMalformedHash.WrapMessage("derived key is not 64 hex-encoded bytes")
	}

	salt, decodeErr := hex.DecodeString(hexSalt)
	if decodeErr != nil || len(salt) < minSaltLen {
		return nil, "", domainerrors.ErrMalformedHash.WrapMessage("salt is not hex or shorter than 8 bytes")
	}

	return key, hexSalt, nil
}
