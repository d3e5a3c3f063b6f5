// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a tenant-scoped account. The same email may exist under different
// tenants; within one tenant it identifies exactly one user.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	TenantID     uuid.UUID  // The tenant this account belongs to.
	Email        string     // Login identifier, unique per tenant.
	PasswordHash string     // The bcrypt-hashed password. Never exposed outside the domain.
	FullName     string     // Optional display name. Empty when the user never provided one.
	Status       UserStatus // Whether the account may log in.
	LastLoginAt  *time.Time // Timestamp of the most recent successful login. Nil before the first login.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
