package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"partnerauth/config"
	"partnerauth/internal/domain/entity"
	"partnerauth/internal/domain/repository"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/infra/auth"
	"partnerauth/internal/infra/lock"
	"partnerauth/internal/infra/persistence/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test_access_secret_key_very_long_for_testing"
	testRefreshSecret = "test_refresh_secret_key_very_long_for_testing"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  testAccessSecret,
			Refresh: testRefreshSecret,
		},
		Token: config.TokenConfig{
			AccessTTL:  24 * time.Hour,
			RefreshTTL: 7 * 24 * time.Hour,
		},
	}
}

// newTestAuthService wires the real hasher, issuer and lock over the in-memory store.
func newTestAuthService(t *testing.T) (*authService, repository.UserRepository) {
	t.Helper()

	hasher, err := auth.NewScryptHasherWithParams(1024, 8, 1)
	require.NoError(t, err)

	issuer, err := auth.NewJWTIssuer(newTestConfig())
	require.NoError(t, err)

	userRepo := memory.NewUserRepository()

	srv := NewAuthService(AuthServiceParams{
		UserRepo:    userRepo,
		Hasher:      hasher,
		TokenIssuer: issuer,
		Locker:      lock.NewLocalLocker(),
		Logger:      newDiscardLogger(),
	})

	return srv.(*authService), userRepo
}

// newMockedAuthService builds the service over the given doubles.
func newMockedAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenIssuer,
	locker service.RotationLocker,
) *authService {
	srv := NewAuthService(AuthServiceParams{
		UserRepo:    userRepo,
		Hasher:      hasher,
		TokenIssuer: tokens,
		Locker:      locker,
		Logger:      newDiscardLogger(),
	})

	return srv.(*authService)
}

func strPtr(s string) *string {
	return &s
}

// signRawToken signs arbitrary claims with HS256, bypassing the issuer's own checks.
func signRawToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func serviceRefreshClaims(user *entity.User) service.RefreshClaims {
	return service.RefreshClaims{
		UserID: user.ID,
		Email:  user.Email,
		Nonce:  "00112233445566778899aabbccddeeff",
	}
}
