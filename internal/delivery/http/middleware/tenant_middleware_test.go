package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gatekeeper/internal/delivery/context"
	domainerrors "gatekeeper/internal/domain/errors"
	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runTenantResolve pushes a request with the given tenant header through the
// middleware and returns the tenant scope the next handler observed.
func runTenantResolve(t *testing.T, m *TenantMiddleware, header string) uuid.UUID {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXTenantID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var observed uuid.UUID
	next := func(c echo.Context) error {
		observed = deliverycontext.GetTenantIDFromContext(c.Request().Context())

		return nil
	}

	require.NoError(t, m.Resolve(next)(c))

	return observed
}

func newTenantMiddlewareWithMock(t *testing.T) (*TenantMiddleware, *mockUsecase.MockTenantUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockTenantUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTenantMiddleware(uc, logger), uc
}

func TestTenantMiddleware_ResolvesTenantID(t *testing.T) {
	m, uc := newTenantMiddlewareWithMock(t)

	tenantID := uuid.New()
	uc.EXPECT().ResolveActiveTenant(mock.Anything, tenantID).Return(&usecase.TenantOutput{
		ID:        tenantID,
		Subdomain: "acme",
		Status:    "active",
	}, nil)

	observed := runTenantResolve(t, m, tenantID.String())
	assert.Equal(t, tenantID, observed)
}

func TestTenantMiddleware_ResolvesSubdomain(t *testing.T) {
	m, uc := newTenantMiddlewareWithMock(t)

	tenantID := uuid.New()
	uc.EXPECT().ResolveActiveTenantBySubdomain(mock.Anything, "acme").Return(&usecase.TenantOutput{
		ID:        tenantID,
		Subdomain: "acme",
		Status:    "active",
	}, nil)

	observed := runTenantResolve(t, m, "acme")
	assert.Equal(t, tenantID, observed)
}

func TestTenantMiddleware_UnresolvableTenantProceedsWithoutScope(t *testing.T) {
	m, uc := newTenantMiddlewareWithMock(t)

	tenantID := uuid.New()
	uc.EXPECT().ResolveActiveTenant(mock.Anything, tenantID).Return(nil, domainerrors.ErrTenantNotFound)

	// The request is not rejected; it just carries no tenant scope.
	observed := runTenantResolve(t, m, tenantID.String())
	assert.Equal(t, uuid.Nil, observed)
}

func TestTenantMiddleware_NoHeader(t *testing.T) {
	m, _ := newTenantMiddlewareWithMock(t)

	observed := runTenantResolve(t, m, "")
	assert.Equal(t, uuid.Nil, observed)
}
