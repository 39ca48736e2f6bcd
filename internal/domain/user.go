package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. IsVerified is the email verification flag,
// distinct from Topic.IsVerified (scholar sign-off).
//
// Credentials are deliberately not a field here: password hashes live in
// a separate credential store keyed by email.
type User struct {
	ID         uuid.UUID
	Email      string
	Name       string
	NameArabic *string
	Avatar     *string
	Role       UserRole
	IsVerified bool
	Bio        *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserUpdateParams carries a partial profile update. Nil fields are left unchanged.
type UserUpdateParams struct {
	Name       *string
	NameArabic *string
	Avatar     *string
	Bio        *string
}

// AuthToken is a single-use token record for password reset and email
// verification flows. Only the SHA-256 hash of the raw token is stored.
type AuthToken struct {
	Hash       string
	UserID     uuid.UUID
	Purpose    TokenPurpose
	ExpiresAt  time.Time
	CreatedAt  time.Time
	ConsumedAt *time.Time
}

// IsExpired reports whether the token has expired relative to now.
func (t *AuthToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// IsConsumed reports whether the token has already been used.
func (t *AuthToken) IsConsumed() bool { return t.ConsumedAt != nil }
