// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"partnerauth/internal/delivery/api/response"
	"partnerauth/internal/delivery/api/validator"
	deliverycontext "partnerauth/internal/delivery/context"
	"partnerauth/internal/domain/entity"
	domainerrors "partnerauth/internal/domain/errors"
	"partnerauth/internal/errors"
	"partnerauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc        usecase.AuthUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase, v *validator.Validator, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		validator: v,
		logger:    logger,
	}
}

// UserResponse is the public view of a user. It never carries the password hash or refresh token.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokensResponse carries a freshly issued token pair.
type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newTokensResponse(tokens *entity.AuthTokens) *TokensResponse {
	return &TokensResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}

// Register handles account registration.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if errs := h.validator.ValidateRegister(&input); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User))
}

// Login handles the password login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if errs := h.validator.ValidateLogin(&input); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	tokens, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokensResponse(tokens))
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if errs := h.validator.ValidateRefresh(&input); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	tokens, err := h.uc.RefreshTokens(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokensResponse(tokens))
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrUserNotFound.WrapMessage("profile lookup")
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile changes the authenticated user's names.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if errs := h.validator.ValidateUpdateProfile(&input); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return domainerrors.ErrUserNotFound.WrapMessage("profile update")
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
