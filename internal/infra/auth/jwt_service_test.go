package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.SecretKey.Reset = "reset-secret"
	cfg.Token = &config.TokenConfig{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		ResetTTL:   time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresAllSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Token = &config.TokenConfig{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	userID := uuid.New()
	tenantID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, tenantID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	userID := uuid.New()
	tenantID := uuid.New()

	_, refreshToken, err := svc.GenerateTokens(userID, tenantID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
}

func TestJWTService_ResetTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	userID := uuid.New()
	tenantID := uuid.New()

	resetToken, err := svc.GenerateResetToken(userID, tenantID)
	require.NoError(t, err)

	claims, err := svc.ValidateResetToken(resetToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypePasswordReset, claims.Type)
}

func TestJWTService_RejectsCrossContextTokens(t *testing.T) {
	svc := newTestTokenService(t)

	userID := uuid.New()
	tenantID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, tenantID)
	require.NoError(t, err)

	resetToken, err := svc.GenerateResetToken(userID, tenantID)
	require.NoError(t, err)

	// A token issued for one purpose never validates under another.
	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(resetToken)
	assert.Error(t, err)

	_, err = svc.ValidateResetToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.SecretKey.Reset = "reset-secret"
	cfg.Token = &config.TokenConfig{
		AccessTTL:  -time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		ResetTTL:   time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)

	tampered := accessToken + "x"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other := &config.Config{}
	other.SecretKey.Access = "other-access-secret"
	other.SecretKey.Refresh = "other-refresh-secret"
	other.SecretKey.Reset = "other-reset-secret"
	other.Token = &config.TokenConfig{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		ResetTTL:   time.Hour,
	}

	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsDeterministic(t *testing.T) {
	svc := newTestTokenService(t)

	hash1 := svc.HashToken("some-refresh-token")
	hash2 := svc.HashToken("some-refresh-token")
	hash3 := svc.HashToken("another-refresh-token")

	assert.Equal(t, hash1, hash2)
	assert.NotEqual(t, hash1, hash3)
	assert.Len(t, hash1, 64) // sha256 hex
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := newTestTokenService(t)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
