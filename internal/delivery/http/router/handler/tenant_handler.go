package handler

import (
	"net/http"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for tenant administration handlers.
type TenantHandler struct {
	uc usecase.TenantUsecase
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase) *TenantHandler {
	return &TenantHandler{
		uc: uc,
	}
}

// CreateTenant provisions a new tenant.
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	input := new(usecase.CreateTenantInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	tenant, err := h.uc.CreateTenant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tenant, "Tenant created successfully")
}

// UpdateTenant applies partial updates to a tenant.
func (h *TenantHandler) UpdateTenant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tenant id")
	}

	input := new(usecase.UpdateTenantInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.ID = id

	tenant, err := h.uc.UpdateTenant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenant, "Tenant updated successfully")
}

// GetTenant loads a tenant by ID.
func (h *TenantHandler) GetTenant(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tenant id")
	}

	tenant, err := h.uc.GetTenant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenant, "Tenant retrieved successfully")
}
