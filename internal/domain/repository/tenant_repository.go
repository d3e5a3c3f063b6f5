// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is a domain-specific error returned when a tenant is not found.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrDuplicateTenant is returned when the subdomain is already taken.
var ErrDuplicateTenant = errors.New("tenant subdomain already exists")

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindBySubdomain retrieves a single tenant by its unique subdomain.
	FindBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error)

	// Create persists a new tenant entity to the storage.
	// Returns ErrDuplicateTenant when the subdomain already exists.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// Update modifies an existing tenant entity in the storage.
	Update(ctx context.Context, tenant *entity.Tenant) error
}
