// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"strings"

	"partnerauth/internal/domain/entity"
	"partnerauth/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by every lookup or write that targets an unknown user.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate carries the mutable profile fields. Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
}

// Normalize drops fields that are blank after trimming and trims the rest.
func (u UserUpdate) Normalize() UserUpdate {
	return UserUpdate{
		FirstName: trimmedOrNil(u.FirstName),
		LastName:  trimmedOrNil(u.LastName),
	}
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// UserRepository is the user store consumed by the auth use case.
// Implementations must enforce email uniqueness and report it as domainerrors.ErrEmailAlreadyInUse.
type UserRepository interface {
	// FindByEmail retrieves a user by an already normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user and fills its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update applies the non-nil fields of update and returns the stored record.
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error)

	// UpdateRefreshToken overwrites the stored refresh token and returns the stored record.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) (*entity.User, error)
}
