// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
// Records are never deleted; revocation is recorded in RevokedAt so the history stays auditable.
type RefreshToken struct {
	ID        uuid.UUID  // The unique ID for this specific refresh token record.
	UserID    uuid.UUID  // Links this session to the User it belongs to.
	TokenHash string     // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time  // The exact time when this refresh token expires and becomes invalid.
	CreatedAt time.Time  // Timestamp of when this session was created.
	RevokedAt *time.Time // When the token was rotated or revoked. Nil while the session is live.
}

// IsActive reports whether the token can still be redeemed at the given instant.
func (t *RefreshToken) IsActive(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
