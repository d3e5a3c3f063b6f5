// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user under a tenant.
type RegisterInput struct {
	TenantID uuid.UUID `json:"tenantId" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required"`
	FullName string    `json:"fullName" validate:"omitempty,max=255"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	TenantID uuid.UUID `json:"tenantId" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required"`
}

// RefreshTokenInput carries the raw refresh token being redeemed.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordInput defines the data required to change a password
// for an authenticated user.
type ChangePasswordInput struct {
	UserID          uuid.UUID `json:"-"`
	CurrentPassword string    `json:"currentPassword" validate:"required"`
	NewPassword     string    `json:"newPassword" validate:"required"`
}

// ForgotPasswordInput starts the password reset flow. The tenant is resolved
// from the request scope, not the body.
type ForgotPasswordInput struct {
	TenantID uuid.UUID `json:"-"`
	Email    string    `json:"email" validate:"required,email"`
}

// UpdateUserInput carries the mutable attributes of a tenant member. Nil
// fields are left unchanged. TenantID is the caller's scope, never taken
// from the request body.
type UpdateUserInput struct {
	UserID   uuid.UUID `json:"-"`
	TenantID uuid.UUID `json:"-"`
	FullName *string   `json:"fullName" validate:"omitempty,max=255"`
	Status   *string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ResetPasswordInput completes the password reset flow with a reset token.
type ResetPasswordInput struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Output DTOs ---

// UserProfile is the sanitized projection of a user returned by the API.
// It never carries the password hash.
type UserProfile struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenantId"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName,omitempty"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user"`
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user under an active tenant. It does not log the user in.
	Register(ctx context.Context, input *RegisterInput) (*UserProfile, error)

	// Login verifies credentials within a tenant and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a refresh token: the presented token is revoked and
	// a new pair is issued. A rotated token can never be redeemed again.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout revokes every active session of the user.
	Logout(ctx context.Context, userID uuid.UUID) error

	// ChangePassword verifies the current password, stores the new hash and
	// revokes every active session.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// ForgotPassword issues a password-reset token when the email resolves to a
	// user. The outcome is identical either way so emails cannot be probed.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword redeems a reset token, stores the new hash and revokes
	// every active session.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// GetProfile loads the sanitized profile of a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)

	// ListTenantUsers lists the sanitized profiles of every user in a tenant.
	ListTenantUsers(ctx context.Context, tenantID uuid.UUID) ([]*UserProfile, error)

	// UpdateTenantUser applies the non-nil fields of the input to a user in
	// the caller's tenant. A user outside that tenant is reported as not
	// found, never as forbidden.
	UpdateTenantUser(ctx context.Context, input *UpdateUserInput) (*UserProfile, error)
}
