// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when the (tenant, email) pair is already taken.
var ErrDuplicateUser = errors.New("user already exists in tenant")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByTenantAndEmail retrieves a single user by email within one tenant.
	// Lookups are always tenant-scoped; there is no cross-tenant email search.
	FindByTenantAndEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.User, error)

	// ListByTenant retrieves all users belonging to a tenant.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	// Returns ErrDuplicateUser when the (tenant, email) pair already exists.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored credential for a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateLastLoginAt records a successful login.
	UpdateLastLoginAt(ctx context.Context, id uuid.UUID) error
}
