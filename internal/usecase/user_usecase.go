// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"partnerauth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenInput carries the refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileInput holds the optional profile fields. Nil or blank fields are ignored.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// AuthUsecase defines the credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account. A taken email fails with domainerrors.ErrEmailAlreadyInUse.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Authenticate checks credentials and starts a new session, replacing any previous one.
	Authenticate(ctx context.Context, input *LoginInput) (*entity.AuthTokens, error)

	// RefreshTokens exchanges the current refresh token for a new pair.
	RefreshTokens(ctx context.Context, input *RefreshTokenInput) (*entity.AuthTokens, error)

	// GetProfile returns the user, or nil without error when there is none.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the given fields. It returns domainerrors.ErrNoProfileChanges when nothing
	// would change, and nil without error when the user does not exist.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
