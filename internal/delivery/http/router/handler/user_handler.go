package handler

import (
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user listing handlers.
type UserHandler struct {
	uc usecase.AuthUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase) *UserHandler {
	return &UserHandler{
		uc: uc,
	}
}

// ListUsers lists the users of the caller's tenant. The tenant scope comes
// from the access token, never from the request, so one tenant can never
// enumerate another tenant's accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	tenantID, ok := middleware.AuthenticatedTenantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated tenant")
	}

	users, err := h.uc.ListTenantUsers(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UpdateUser applies partial updates to a user in the caller's tenant. The
// tenant scope comes from the access token, so a user ID from another tenant
// reads as not found.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	tenantID, ok := middleware.AuthenticatedTenantID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated tenant")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	input := new(usecase.UpdateUserInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID
	input.TenantID = tenantID

	user, err := h.uc.UpdateTenantUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}
