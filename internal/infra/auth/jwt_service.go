// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access, refresh and password-reset tokens are signed with three separate
// secrets; validation always pins both the secret and the "type" claim.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	resetSecret   string        // Secret key for signing password-reset tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	resetTTL      time.Duration // Time-to-live for password-reset tokens.
}

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	TenantID string `json:"tid"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   cfg.SecretKey.Reset,
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
		resetTTL:      cfg.Token.ResetTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID, tenantID uuid.UUID) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, tenantID, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, tenantID, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateResetToken creates a short-lived password-reset token.
func (s *jwtService) GenerateResetToken(userID, tenantID uuid.UUID) (string, error) {
	return s.generateToken(userID, tenantID, s.resetTTL, s.resetSecret, service.TokenTypePasswordReset)
}

// ValidateAccessToken checks a token against the access signing context.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks a token against the refresh signing context.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// ValidateResetToken checks a token against the password-reset signing context.
func (s *jwtService) ValidateResetToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.resetSecret, service.TokenTypePasswordReset)
}

// HashToken derives the SHA-256 hex digest under which a raw refresh token is stored.
func (s *jwtService) HashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID, tenantID uuid.UUID, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		TenantID: tenantID.String(),
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// validateToken parses a token with the given secret and rejects any token
// whose "type" claim does not match the expected signing context.
func (s *jwtService) validateToken(tokenString, secret, expectedType string) (*service.Claims, error) {
	parsed := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if parsed.Type != expectedType {
		return nil, pkgerrors.Errorf("unexpected token type %q", parsed.Type)
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid subject claim")
	}

	tenantID, err := uuid.Parse(parsed.TenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid tenant claim")
	}

	return &service.Claims{
		UserID:           userID,
		TenantID:         tenantID,
		Type:             parsed.Type,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}
