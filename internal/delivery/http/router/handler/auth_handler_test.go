package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/validator"
	mockUsecase "gatekeeper/internal/mocks/usecase"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	tenantID := uuid.New()
	userID := uuid.New()

	uc.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).Return(&usecase.UserProfile{
		ID:        userID,
		TenantID:  tenantID,
		Email:     "user@example.com",
		Status:    "active",
		CreatedAt: time.Now(),
	}, nil)

	body := `{"tenantId":"` + tenantID.String() + `","email":"user@example.com","password":"Password1","fullName":"Test User"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	// Missing email and password; the usecase must never be reached.
	body := `{"tenantId":"` + uuid.New().String() + `"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)
}

func TestAuthHandler_Login(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	tenantID := uuid.New()

	uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).Return(&usecase.LoginOutput{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: &usecase.UserProfile{
			ID:       uuid.New(),
			TenantID: tenantID,
			Email:    "user@example.com",
			Status:   "active",
		},
	}, nil)

	body := `{"tenantId":"` + tenantID.String() + `","email":"user@example.com","password":"Password1"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.Contains(t, rec.Body.String(), "refresh-token")
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.EXPECT().RefreshToken(mock.Anything, mock.AnythingOfType("*usecase.RefreshTokenInput")).Return(&usecase.RefreshTokenOutput{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/refresh-token", `{"refreshToken":"old-refresh"}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestAuthHandler_Logout(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	userID := uuid.New()
	uc.EXPECT().Logout(mock.Anything, userID).Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.KeyUserID, userID)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	userID := uuid.New()
	uc.EXPECT().GetProfile(mock.Anything, userID).Return(&usecase.UserProfile{
		ID:     userID,
		Email:  "user@example.com",
		Status: "active",
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.KeyUserID, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	userID := uuid.New()
	uc.EXPECT().ChangePassword(mock.Anything, mock.AnythingOfType("*usecase.ChangePasswordInput")).Run(func(ctx context.Context, input *usecase.ChangePasswordInput) {
		assert.Equal(t, userID, input.UserID)
	}).Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/change-password", `{"currentPassword":"OldPassword1","newPassword":"NewPassword1"}`)
	c.Set(middleware.KeyUserID, userID)

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ForgotPassword_UsesTenantScope(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	tenantID := uuid.New()

	var captured *usecase.ForgotPasswordInput
	uc.EXPECT().ForgotPassword(mock.Anything, mock.AnythingOfType("*usecase.ForgotPasswordInput")).Run(func(ctx context.Context, input *usecase.ForgotPasswordInput) {
		captured = input
	}).Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/forgot-password", `{"email":"user@example.com"}`)
	ctx := deliverycontext.WithTenantID(c.Request().Context(), tenantID)
	c.SetRequest(c.Request().WithContext(ctx))

	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If the account exists")
	require.NotNil(t, captured)
	assert.Equal(t, tenantID, captured.TenantID)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	uc.EXPECT().ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/auth/reset-password", `{"resetToken":"reset-token","newPassword":"NewPassword1"}`)

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
