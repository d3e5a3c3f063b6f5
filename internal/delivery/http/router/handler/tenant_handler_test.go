package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTenantHandler_CreateTenant(t *testing.T) {
	uc := mockUsecase.NewMockTenantUsecase(t)
	h := NewTenantHandler(uc)

	tenantID := uuid.New()

	uc.EXPECT().CreateTenant(mock.Anything, mock.AnythingOfType("*usecase.CreateTenantInput")).Return(&usecase.TenantOutput{
		ID:        tenantID,
		Name:      "Acme Corp",
		Subdomain: "acme",
		Status:    "active",
		CreatedAt: time.Now(),
	}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/tenants", `{"name":"Acme Corp","subdomain":"acme"}`)

	require.NoError(t, h.CreateTenant(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), tenantID.String())
}

func TestTenantHandler_CreateTenant_InvalidSubdomain(t *testing.T) {
	uc := mockUsecase.NewMockTenantUsecase(t)
	h := NewTenantHandler(uc)

	c, _ := newTestContext(t, http.MethodPost, "/tenants", `{"name":"Acme Corp","subdomain":"not a subdomain"}`)

	require.Error(t, h.CreateTenant(c))
}

func TestTenantHandler_GetTenant(t *testing.T) {
	uc := mockUsecase.NewMockTenantUsecase(t)
	h := NewTenantHandler(uc)

	tenantID := uuid.New()

	uc.EXPECT().GetTenant(mock.Anything, tenantID).Return(&usecase.TenantOutput{
		ID:        tenantID,
		Name:      "Acme Corp",
		Subdomain: "acme",
		Status:    "active",
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/tenants/"+tenantID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(tenantID.String())

	require.NoError(t, h.GetTenant(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acme")
}

func TestTenantHandler_UpdateTenant(t *testing.T) {
	uc := mockUsecase.NewMockTenantUsecase(t)
	h := NewTenantHandler(uc)

	tenantID := uuid.New()

	uc.EXPECT().UpdateTenant(mock.Anything, mock.AnythingOfType("*usecase.UpdateTenantInput")).Run(func(ctx context.Context, input *usecase.UpdateTenantInput) {
		assert.Equal(t, tenantID, input.ID)
		require.NotNil(t, input.Status)
		assert.Equal(t, "inactive", *input.Status)
	}).Return(&usecase.TenantOutput{
		ID:        tenantID,
		Name:      "Acme Corp",
		Subdomain: "acme",
		Status:    "inactive",
	}, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/tenants/"+tenantID.String(), `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues(tenantID.String())

	require.NoError(t, h.UpdateTenant(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "inactive")
}

func TestTenantHandler_UpdateTenant_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockTenantUsecase(t)
	h := NewTenantHandler(uc)

	c, rec := newTestContext(t, http.MethodPatch, "/tenants/not-a-uuid", `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.UpdateTenant(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
