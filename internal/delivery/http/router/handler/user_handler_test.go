package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gatekeeper/internal/delivery/http/middleware"
	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_ListUsers(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(uc)

	tenantID := uuid.New()
	userID := uuid.New()

	uc.EXPECT().ListTenantUsers(mock.Anything, tenantID).Return([]*usecase.UserProfile{
		{
			ID:        userID,
			TenantID:  tenantID,
			Email:     "user@example.com",
			Status:    "active",
			CreatedAt: time.Now(),
		},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	c.Set(middleware.KeyTenantID, tenantID)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestUserHandler_ListUsers_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(uc)

	tenantID := uuid.New()
	userID := uuid.New()

	uc.EXPECT().UpdateTenantUser(mock.Anything, mock.AnythingOfType("*usecase.UpdateUserInput")).Run(func(ctx context.Context, input *usecase.UpdateUserInput) {
		// Path and token decide the target; the body only carries attributes.
		assert.Equal(t, userID, input.UserID)
		assert.Equal(t, tenantID, input.TenantID)
		require.NotNil(t, input.FullName)
		assert.Equal(t, "New Name", *input.FullName)
	}).Return(&usecase.UserProfile{
		ID:       userID,
		TenantID: tenantID,
		Email:    "user@example.com",
		FullName: "New Name",
		Status:   "active",
	}, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/users/"+userID.String(), `{"fullName":"New Name"}`)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	c.Set(middleware.KeyTenantID, tenantID)

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New Name")
}

func TestUserHandler_UpdateUser_InvalidStatus(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(uc)

	userID := uuid.New()

	c, _ := newTestContext(t, http.MethodPatch, "/users/"+userID.String(), `{"status":"banned"}`)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	c.Set(middleware.KeyTenantID, uuid.New())

	// Unknown status values fail validation before the usecase is reached.
	require.Error(t, h.UpdateUser(c))
}

func TestUserHandler_UpdateUser_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewUserHandler(uc)

	c, rec := newTestContext(t, http.MethodPatch, "/users/not-a-uuid", `{"fullName":"New Name"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(middleware.KeyTenantID, uuid.New())

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
