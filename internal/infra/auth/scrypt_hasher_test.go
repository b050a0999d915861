package auth

import (
	"strings"
	"testing"

	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Low cost keeps the suite fast; the format does not depend on N.
func newTestHasher(t *testing.T) *scryptHasher {
	t.Helper()

	h, err := NewScryptHasherWithParams(1024, 8, 1)
	require.NoError(t, err)

	return h.(*scryptHasher)
}

func TestScryptHasher_HashAndCompare(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	keyHex, saltHex, found := strings.Cut(hash, ".")
	require.True(t, found)
	assert.Len(t, keyHex, 128)
	assert.Len(t, saltHex, 32)

	ok, err := hasher.Compare(hash, "Passw0rd")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare(hash, "Passw0rD")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Compare(hash, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := hasher.Compare(hash, "Passw0rd")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestScryptHasher_VerifiesExistingHashes(t *testing.T) {
	// Produced by Node's crypto.scrypt with default cost and an 8-byte hex salt.
	const stored = "0ae13e33a756aac96778f4f2fad5a17ed1c859ef3fda0d5b1e88dc94620bb305" +
		"4deb5c0d6979d10cd67d0bb283b7f1f2e46bdba24b431903bd0870f9362d4c32.0123456789abcdef"

	hasher, err := NewScryptHasherWithParams(16384, 8, 1)
	require.NoError(t, err)

	ok, err := hasher.Compare(stored, "Passw0rd")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare(stored, "passw0rd")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher(t)
	validKey := strings.Repeat("ab", 64)

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no delimiter", stored: validKey},
		{name: "two delimiters", stored: validKey + ".0123456789abcdef.00"},
		{name: "short key", stored: "abcd.0123456789abcdef"},
		{name: "non hex key", stored: strings.Repeat("zz", 64) + ".0123456789abcdef"},
		{name: "short salt", stored: validKey + ".0123"},
		{name: "non hex salt", stored: validKey + ".not-hex-salt-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Compare(tt.stored, "Passw0rd")
			assert.False(t, ok)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedHash))
		})
	}
}

func TestNewScryptHasherWithParams_RejectsBadCost(t *testing.T) {
	_, err := NewScryptHasherWithParams(1000, 8, 1)
	assert.Error(t, err)

	_, err = NewScryptHasherWithParams(1024, 0, 1)
	assert.Error(t, err)

	_, err = NewScryptHasherWithParams(1024, 8, 0)
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestScryptHasher_SaltSourceFailure(t *testing.T) {
	hasher := newTestHasher(t)
	hasher.random = failingReader{}

	_, err := hasher.Hash("Passw0rd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
