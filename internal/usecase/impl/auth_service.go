// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "partnerauth/internal/delivery/context"
	"partnerauth/internal/domain/entity"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/domain/repository"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"
	"partnerauth/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenIssuer
	locker   service.RotationLocker
	nonce    func() (string, error) // refresh token nonce source
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Locker      service.RotationLocker
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		tokens:   params.TokenIssuer,
		locker:   params.Locker,
		nonce:    newRefreshNonce,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account for a normalized email.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already in use", slog.String("email", email))

		return nil, domainerrors.ErrEmailAlreadyInUse.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}

	// The store enforces uniqueness too, which covers two registrations racing past the lookup.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyInUse) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Authenticate verifies the password and starts a new session.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*entity.AuthTokens, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, errInvalidCredentials()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	matched, err := srv.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		srv.log(ctx).Error("Stored password hash could not be verified",
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)

		return nil, errInvalidCredentials()
	}
	if !matched {
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, errInvalidCredentials()
	}

	unlock, err := srv.locker.Lock(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire rotation lock")
	}
	defer unlock()

	tokens, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return tokens, nil
}

// RefreshTokens rotates the session. The presented token must be the one currently stored.
func (srv *authService) RefreshTokens(ctx context.Context, input *usecase.RefreshTokenInput) (*entity.AuthTokens, error) {
	claims, err := srv.tokens.VerifyRefresh(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token verification failed")
	}

	// Held until the new token is stored, so two callers presenting the same token cannot both rotate.
	unlock, err := srv.locker.Lock(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire rotation lock")
	}
	defer unlock()

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Refresh token for unknown user", slog.Any("userID", claims.UserID))

		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !sameToken(user.RefreshToken, input.RefreshToken) {
		srv.log(ctx).Warn("Refresh token does not match stored session", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token has been rotated or revoked")
	}

	tokens, err := srv.issueTokens(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("user not found")
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", user.ID))

	return tokens, nil
}

// GetProfile returns the user or nil when it does not exist.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the provided name fields.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var update repository.UserUpdate
	if input != nil {
		update = repository.UserUpdate{FirstName: input.FirstName, LastName: input.LastName}.Normalize()
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrNoProfileChanges.WrapMessage("no profile fields provided")
	}

	user, err := srv.userRepo.Update(ctx, userID, update)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// issueTokens signs a new pair and stores the refresh token, replacing the previous one.
// Callers must hold the rotation lock for user.ID.
func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*entity.AuthTokens, error) {
	accessToken, err := srv.tokens.SignAccess(service.AccessClaims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	nonce, err := srv.nonce()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh nonce")
	}

	refreshToken, err := srv.tokens.SignRefresh(service.RefreshClaims{UserID: user.ID, Email: user.Email, Nonce: nonce})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	if _, err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// errInvalidCredentials is shared by every login failure so callers see one message.
func errInvalidCredentials() error {
	return domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
}

func sameToken(stored *string, presented string) bool {
	if stored == nil || presented == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(*stored), []byte(presented)) == 1
}
