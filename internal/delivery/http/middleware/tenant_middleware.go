package middleware

import (
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TenantMiddleware resolves the ambient tenant scope from the X-Tenant-Id
// header and stashes it in the request context. The header carries either a
// tenant ID or a subdomain. The header is optional; endpoints that need a
// tenant decide for themselves what to do without one.
type TenantMiddleware struct {
	tenantUsecase usecase.TenantUsecase
	logger        *slog.Logger
}

// NewTenantMiddleware creates a new tenant scope middleware.
func NewTenantMiddleware(tenantUsecase usecase.TenantUsecase, logger *slog.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		tenantUsecase: tenantUsecase,
		logger:        logger,
	}
}

// Resolve looks up the tenant named by the header and stores its ID in
// context.Context. A header that does not resolve to an active tenant is
// ignored rather than rejected; the request simply proceeds without tenant
// scope, so the endpoints behind this middleware stay unprobeable.
func (m *TenantMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(deliverycontext.HeaderXTenantID)
		if header == "" {
			return next(c)
		}

		tenant, err := m.resolveTenant(c, header)
		if err != nil {
			m.logger.Debug("Ignoring unresolvable tenant header", slog.String("header", header))

			return next(c)
		}

		ctx := deliverycontext.WithTenantID(c.Request().Context(), tenant.ID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveTenant treats a header that parses as a UUID as a tenant ID and
// anything else as a subdomain.
func (m *TenantMiddleware) resolveTenant(c echo.Context, header string) (*usecase.TenantOutput, error) {
	if tenantID, err := uuid.Parse(header); err == nil {
		return m.tenantUsecase.ResolveActiveTenant(c.Request().Context(), tenantID)
	}

	return m.tenantUsecase.ResolveActiveTenantBySubdomain(c.Request().Context(), header)
}
