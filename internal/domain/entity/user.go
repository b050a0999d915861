// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account record behind every session.
// PasswordHash and RefreshToken never leave the core; delivery renders users through its own response type.
type User struct {
	ID           uuid.UUID // Generated by the store on create, immutable afterwards.
	Email        string    // Trimmed, lower-cased login key. Unique.
	PasswordHash string    // hex(key) "." hex(salt), see infra/auth.
	FirstName    string    // Given name.
	LastName     string    // Family name.
	RefreshToken *string   // The only refresh token currently accepted for this user. Nil until first login.
	CreatedAt    time.Time // Set by the store on create.
	UpdatedAt    time.Time // Set by the store on every write.
}

// HasSession reports whether the user holds a live refresh token.
func (u *User) HasSession() bool {
	return u.RefreshToken != nil && *u.RefreshToken != ""
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
