package auth

import (
	"testing"
	"time"

	"partnerauth/config"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Token: config.TokenConfig{
			AccessTTL:  24 * time.Hour,
			RefreshTTL: 7 * 24 * time.Hour,
		},
	}
}

func newTestIssuer(t *testing.T) *jwtIssuer {
	t.Helper()

	issuer, err := NewJWTIssuer(newTestConfig())
	require.NoError(t, err)

	return issuer.(*jwtIssuer)
}

func TestJWTIssuer_AccessRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)
	userID := uuid.New()

	token, err := issuer.SignAccess(service.AccessClaims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestJWTIssuer_RefreshRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)
	userID := uuid.New()

	token, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "n1"})
	require.NoError(t, err)

	claims, err := issuer.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "n1", claims.Nonce)
}

func TestJWTIssuer_NonceMakesRefreshTokensDistinct(t *testing.T) {
	issuer := newTestIssuer(t)
	fixed := time.Now()
	issuer.now = func() time.Time { return fixed }
	userID := uuid.New()

	first, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "aaaa"})
	require.NoError(t, err)
	second, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "bbbb"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTIssuer_RefreshRequiresNonce(t *testing.T) {
	issuer := newTestIssuer(t)

	_, err := issuer.SignRefresh(service.RefreshClaims{UserID: uuid.New(), Email: "a@x.com"})
	assert.Error(t, err)
}

func TestJWTIssuer_SecretsAreIndependent(t *testing.T) {
	issuer := newTestIssuer(t)
	userID := uuid.New()

	access, err := issuer.SignAccess(service.AccessClaims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)
	refresh, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "n"})
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = issuer.VerifyAccess(refresh)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_TypeClaimIsEnforced(t *testing.T) {
	// Same secret for both kinds, so only the type claim tells them apart.
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	access, err := issuer.SignAccess(service.AccessClaims{UserID: uuid.New(), Email: "a@x.com"})
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_ExpiredTokens(t *testing.T) {
	issuer := newTestIssuer(t)
	issued := time.Now().Add(-30 * 24 * time.Hour)
	issuer.now = func() time.Time { return issued }
	userID := uuid.New()

	access, err := issuer.SignAccess(service.AccessClaims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)
	refresh, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "n"})
	require.NoError(t, err)

	issuer.now = time.Now

	_, err = issuer.VerifyAccess(access)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = issuer.VerifyRefresh(refresh)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_AccessExpiresBeforeRefresh(t *testing.T) {
	issuer := newTestIssuer(t)
	issued := time.Now().Add(-48 * time.Hour)
	issuer.now = func() time.Time { return issued }
	userID := uuid.New()

	access, err := issuer.SignAccess(service.AccessClaims{UserID: userID, Email: "a@x.com"})
	require.NoError(t, err)
	refresh, err := issuer.SignRefresh(service.RefreshClaims{UserID: userID, Email: "a@x.com", Nonce: "n"})
	require.NoError(t, err)

	issuer.now = time.Now

	_, err = issuer.VerifyAccess(access)
	assert.Error(t, err)

	_, err = issuer.VerifyRefresh(refresh)
	assert.NoError(t, err)
}

func TestJWTIssuer_RejectsForeignTokens(t *testing.T) {
	issuer := newTestIssuer(t)
	userID := uuid.New()

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tokenClaims{
		Email: "a@x.com",
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(issuer.accessSecret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: "a@x.com",
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  tokenIssuerName,
			Subject: userID.String(),
		},
	}).SignedString(issuer.accessSecret)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: "a@x.com",
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(issuer.accessSecret)
	require.NoError(t, err)

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: "a@x.com",
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("someone-else"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"empty":        "",
		"hs512":        hs512,
		"no expiry":    noExpiry,
		"bad subject":  badSubject,
		"wrong secret": otherSecret,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := issuer.VerifyAccess(token)
			assert.Nil(t, claims)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestNewJWTIssuer_Validation(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	issuer, err := NewJWTIssuer(cfg)
	assert.Nil(t, issuer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")

	cfg = newTestConfig()
	cfg.Token.RefreshTTL = 0
	_, err = NewJWTIssuer(cfg)
	assert.Error(t, err)
}
