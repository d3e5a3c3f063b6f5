package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateTenantInput defines the data required to provision a new tenant.
type CreateTenantInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Subdomain string `json:"subdomain" validate:"required,hostname_rfc1123,max=63"`
}

// UpdateTenantInput carries the mutable tenant attributes. Nil fields are
// left unchanged.
type UpdateTenantInput struct {
	ID     uuid.UUID `json:"-"`
	Name   *string   `json:"name" validate:"omitempty,max=255"`
	Status *string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// TenantOutput is the projection of a tenant returned by the API.
type TenantOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TenantUsecase defines the interface for tenant administration operations.
type TenantUsecase interface {
	// CreateTenant provisions a new active tenant with a unique subdomain.
	CreateTenant(ctx context.Context, input *CreateTenantInput) (*TenantOutput, error)

	// GetTenant loads a tenant by ID.
	GetTenant(ctx context.Context, id uuid.UUID) (*TenantOutput, error)

	// UpdateTenant applies the non-nil fields of the input to an existing
	// tenant. Setting the status to inactive suspends every account in it.
	UpdateTenant(ctx context.Context, input *UpdateTenantInput) (*TenantOutput, error)

	// ResolveActiveTenant loads a tenant by ID and ensures it is active.
	// Used by the tenant header middleware.
	ResolveActiveTenant(ctx context.Context, id uuid.UUID) (*TenantOutput, error)

	// ResolveActiveTenantBySubdomain loads a tenant by its subdomain and
	// ensures it is active. Used by the tenant header middleware when the
	// scope is given as a subdomain instead of an ID.
	ResolveActiveTenantBySubdomain(ctx context.Context, subdomain string) (*TenantOutput, error)
}
