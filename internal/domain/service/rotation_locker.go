package service

import (
	"context"

	"github.com/google/uuid"
)

// RotationLocker serializes refresh-token rotation per user.
type RotationLocker interface {
	// Lock blocks until the caller owns the rotation lock for userID or ctx ends.
	// The returned unlock must be called exactly once.
	Lock(ctx context.Context, userID uuid.UUID) (unlock func(), err error)
}
