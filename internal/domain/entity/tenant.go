// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated customer organization. Every user and every
// credential in the system belongs to exactly one tenant.
type Tenant struct {
	ID        uuid.UUID    // The unique identifier for the tenant.
	Name      string       // Human-readable organization name.
	Subdomain string       // Globally unique subdomain used to address the tenant.
	Status    TenantStatus // Whether the tenant may authenticate users.
	CreatedAt time.Time    // Timestamp of when this tenant was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this tenant.
}

// IsActive reports whether the tenant is allowed to authenticate users.
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
