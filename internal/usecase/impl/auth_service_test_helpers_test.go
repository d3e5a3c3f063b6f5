package impl

import (
	"io"
	"log/slog"
	"testing"

	"gatekeeper/config"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"
)

// newDiscardLogger returns a logger that discards all output, for use in tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// authServiceMocks bundles every dependency mock of authService so individual
// tests only set expectations on the collaborators they exercise.
type authServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	tenantRepo       *mockRepo.MockTenantRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newAuthServiceWithMocks(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	return newAuthServiceWithConfig(t, nil)
}

// newAuthServiceWithSessionLimit builds the service with a concurrent session cap.
func newAuthServiceWithSessionLimit(t *testing.T, maxActiveSessions int) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	return newAuthServiceWithConfig(t, &config.Config{
		Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions},
	})
}

func newAuthServiceWithConfig(t *testing.T, cfg *config.Config) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	return buildAuthService(t, cfg, newDiscardLogger())
}

// newAuthServiceWithLogger builds the service with a caller-supplied logger,
// for tests that inspect the log output.
func newAuthServiceWithLogger(t *testing.T, logger *slog.Logger) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	return buildAuthService(t, nil, logger)
}

func buildAuthService(t *testing.T, cfg *config.Config, logger *slog.Logger) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		tenantRepo:       mockRepo.NewMockTenantRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:        mocks.txManager,
		UserRepo:         mocks.userRepo,
		TenantRepo:       mocks.tenantRepo,
		RefreshTokenRepo: mocks.refreshTokenRepo,
		Hasher:           mocks.hasher,
		TokenService:     mocks.tokenService,
		Config:           cfg,
		Logger:           logger,
	})

	return svc, mocks
}
