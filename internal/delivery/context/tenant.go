package context

import (
	"context"

	"github.com/google/uuid"
)

const (
	// KeyTenantID is the key for storing the resolved tenant ID in context.
	KeyTenantID ContextKey = "tenant_id"

	// HeaderXTenantID is the HTTP header carrying the ambient tenant scope.
	HeaderXTenantID = "X-Tenant-Id"
)

// GetTenantIDFromContext extracts the resolved tenant ID from context.Context.
// Returns uuid.Nil when no tenant scope was resolved for the request.
func GetTenantIDFromContext(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(KeyTenantID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// WithTenantID returns a new context with the resolved tenant ID.
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyTenantID, tenantID)
}
