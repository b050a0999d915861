package auth

import (
	"time"

	"partnerauth/config"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuerName = "partnerauth"

// jwtIssuer implements service.TokenIssuer with HS256 JWTs.
type jwtIssuer struct {
	accessSecret  []byte           // Signs access tokens only.
	refreshSecret []byte           // Signs refresh tokens only.
	accessTTL     time.Duration    // Lifetime of access tokens.
	refreshTTL    time.Duration    // Lifetime of refresh tokens.
	now           func() time.Time // Clock used for iat/exp and for validation.
}

// tokenClaims is the wire form of both token kinds.
type tokenClaims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	Nonce string `json:"nonce,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTIssuer builds the issuer from secretKey and token.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Token.AccessTTL <= 0 || cfg.Token.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &jwtIssuer{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
		now:           time.Now,
	}, nil
}

// SignAccess issues an access token for claims.
func (s *jwtIssuer) SignAccess(claims service.AccessClaims) (string, error) {
	return s.sign(claims.UserID, tokenClaims{
		Email: claims.Email,
		Type:  service.TokenTypeAccess,
	}, s.accessTTL, s.accessSecret)
}

// VerifyAccess validates an access token and returns its claims.
func (s *jwtIssuer) VerifyAccess(token string) (*service.AccessClaims, error) {
	claims, userID, err := s.parse(token, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &service.AccessClaims{UserID: userID, Email: claims.Email}, nil
}

// SignRefresh issues a refresh token. The caller supplies a fresh nonce for every call.
func (s *jwtIssuer) SignRefresh(claims service.RefreshClaims) (string, error) {
	if claims.Nonce == "" {
		return "", errors.New("refresh token nonce must not be empty")
	}

	return s.sign(claims.UserID, tokenClaims{
		Email: claims.Email,
		Type:  service.TokenTypeRefresh,
		Nonce: claims.Nonce,
	}, s.refreshTTL, s.refreshSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *jwtIssuer) VerifyRefresh(token string) (*service.RefreshClaims, error) {
	claims, userID, err := s.parse(token, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if claims.Nonce == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token without nonce")
	}

	return &service.RefreshClaims{UserID: userID, Email: claims.Email, Nonce: claims.Nonce}, nil
}

func (s *jwtIssuer) sign(userID uuid.UUID, claims tokenClaims, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    tokenIssuerName,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parse checks signature, algorithm, issuer, expiry and token type.
func (s *jwtIssuer) parse(token string, secret []byte, tokenType string) (*tokenClaims, uuid.UUID, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if claims.Type != tokenType {
		return nil, uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type " + claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("subject is not a user id")
	}

	return claims, userID, nil
}
