package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type markers carried in the "type" claim. A token issued for one
// purpose never validates under another.
const (
	TokenTypeAccess        = "access"
	TokenTypeRefresh       = "refresh"
	TokenTypePasswordReset = "password_reset"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Type     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Access, refresh and password-reset tokens are signed with three distinct
// secrets, so a token from one context can never be replayed into another.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID, tenantID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GenerateResetToken creates a short-lived password-reset token.
	GenerateResetToken(userID, tenantID uuid.UUID) (string, error)

	// ValidateAccessToken checks a token against the access signing context.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a token against the refresh signing context.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// ValidateResetToken checks a token against the password-reset signing context.
	ValidateResetToken(tokenString string) (*Claims, error)

	// HashToken derives the deterministic hash under which a raw refresh token
	// is stored. The raw token itself never touches the database.
	HashToken(rawToken string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
