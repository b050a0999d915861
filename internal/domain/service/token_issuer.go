package service

import (
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessClaims identify the caller of a single request.
type AccessClaims struct {
	UserID uuid.UUID
	Email  string
}

// RefreshClaims are exchanged for a new token pair.
// Nonce makes two refresh tokens issued for the same user in the same second differ.
type RefreshClaims struct {
	UserID uuid.UUID
	Email  string
	Nonce  string
}

// TokenIssuer signs and verifies access and refresh tokens.
// The two kinds use independent secrets and lifetimes.
// Verify failures are reported as domainerrors.ErrInvalidToken.
type TokenIssuer interface {
	SignAccess(claims AccessClaims) (string, error)
	VerifyAccess(token string) (*AccessClaims, error)
	SignRefresh(claims RefreshClaims) (string, error)
	VerifyRefresh(token string) (*RefreshClaims, error)
}
