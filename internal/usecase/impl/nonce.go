package impl

import (
	"crypto/rand"
	"encoding/hex"

	"partnerauth/internal/errors"
)

const refreshNonceBytes = 16

// newRefreshNonce returns 16 random bytes, hex encoded.
func newRefreshNonce() (string, error) {
	buf := make([]byte, refreshNonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random nonce")
	}

	return hex.EncodeToString(buf), nil
}
