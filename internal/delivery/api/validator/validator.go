// Package validator checks request payloads before they reach the use cases.
package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"partnerauth/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const (
	tagStrongPassword = "strongpassword"

	maxNameLength = 100
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// rule pairs a validator tag with the message reported when it fails.
type rule struct {
	tag     string
	message string
}

// Validator wraps validator/v10 with the request rules of the auth API.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation(tagStrongPassword, strongPassword)

	return &Validator{validate: validate}
}

// ValidateRegister checks email format, password strength and that both names are present.
func (v *Validator) ValidateRegister(input *usecase.RegisterInput) []FieldError {
	if input == nil {
		input = &usecase.RegisterInput{}
	}

	return collect(
		v.check("email", strings.TrimSpace(input.Email),
			rule{"required", "email is required"},
			rule{"email", "email must be a valid email address"},
		),
		v.check("password", input.Password,
			rule{"required", "password is required"},
			rule{"min=8", "password must be at least 8 characters"},
			rule{tagStrongPassword, "password must contain an uppercase letter, a lowercase letter and a digit"},
		),
		v.checkName("firstName", strings.TrimSpace(input.FirstName), true),
		v.checkName("lastName", strings.TrimSpace(input.LastName), true),
	)
}

// ValidateLogin only requires both fields. Format errors surface as invalid credentials.
func (v *Validator) ValidateLogin(input *usecase.LoginInput) []FieldError {
	if input == nil {
		input = &usecase.LoginInput{}
	}

	return collect(
		v.check("email", strings.TrimSpace(input.Email), rule{"required", "email is required"}),
		v.check("password", input.Password, rule{"required", "password is required"}),
	)
}

// ValidateRefresh requires the refresh token.
func (v *Validator) ValidateRefresh(input *usecase.RefreshTokenInput) []FieldError {
	if input == nil {
		input = &usecase.RefreshTokenInput{}
	}

	return collect(
		v.check("refreshToken", strings.TrimSpace(input.RefreshToken), rule{"required", "refreshToken is required"}),
	)
}

// ValidateUpdateProfile bounds the length of the provided names.
// An update without fields is left to the use case, which reports it as no change.
func (v *Validator) ValidateUpdateProfile(input *usecase.UpdateProfileInput) []FieldError {
	if input == nil {
		return nil
	}

	var errs []*FieldError
	if input.FirstName != nil {
		errs = append(errs, v.checkName("firstName", strings.TrimSpace(*input.FirstName), false))
	}
	if input.LastName != nil {
		errs = append(errs, v.checkName("lastName", strings.TrimSpace(*input.LastName), false))
	}

	return collect(errs...)
}

func (v *Validator) checkName(field, value string, required bool) *FieldError {
	rules := []rule{{
		tag:     "max=" + strconv.Itoa(maxNameLength),
		message: fmt.Sprintf("%s must be at most %d characters", field, maxNameLength),
	}}
	if required {
		rules = append([]rule{{tag: "required", message: field + " is required"}}, rules...)
	}

	return v.check(field, value, rules...)
}

// check applies rules in order and reports the first one that fails.
func (v *Validator) check(field string, value any, rules ...rule) *FieldError {
	for _, r := range rules {
		if err := v.validate.Var(value, r.tag); err != nil {
			return &FieldError{Field: field, Message: r.message}
		}
	}

	return nil
}

func collect(results ...*FieldError) []FieldError {
	var errs []FieldError
	for _, result := range results {
		if result != nil {
			errs = append(errs, *result)
		}
	}

	return errs
}

// strongPassword requires at least one lowercase letter, one uppercase letter and one digit.
func strongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return lower && upper && digit
}
