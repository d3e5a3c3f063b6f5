// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	tenantRepo        repository.TenantRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	TenantRepo       repository.TenantRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		tenantRepo:        params.TenantRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user under an active tenant. Registration never
// issues tokens; the user logs in afterwards.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserProfile, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("tenantID", input.TenantID), slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	// Resolve the tenant before hashing so requests against unknown tenants
	// never pay the bcrypt cost.
	tenant, err := srv.requireActiveTenant(ctx, srv.tenantRepo, input.TenantID)
	if err != nil {
		srv.log(ctx).Warn("Registration against unavailable tenant", slog.Any("tenantID", input.TenantID), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newUser := &entity.User{
			TenantID:     tenant.ID,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			FullName:     input.FullName,
			Status:       entity.UserStatusActive,
		}

		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrDuplicateUser, "email already registered in tenant")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return toUserProfile(registeredUser), nil
}

// Login verifies tenant-scoped credentials and issues a fresh token pair.
// An unknown email and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.Any("tenantID", input.TenantID), slog.String("email", input.Email))

	user, err := srv.loadLoginUser(ctx, input.TenantID, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsActive() {
		srv.log(ctx).Warn("Login attempt for inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account is inactive")
	}

	// Generate tokens outside the transaction.
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.TenantID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), user.ID, refreshTokenString); err != nil {
			return err
		}

		if err := repoFactory.UserRepo().UpdateLastLoginAt(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to record last login")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	now := time.Now()
	user.LastLoginAt = &now

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         toUserProfile(user),
	}, nil
}

// loadLoginUser resolves the tenant and the tenant-scoped user for a login
// attempt. A missing tenant or a missing user both collapse into
// ErrInvalidCredentials; only an existing-but-suspended tenant is reported
// as ErrTenantNotFound.
func (srv *authService) loadLoginUser(ctx context.Context, tenantID uuid.UUID, email string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenant, findTenantErr := repoFactory.TenantRepo().FindByID(ctx, tenantID)
		if findTenantErr != nil {
			if errors.Is(findTenantErr, repository.ErrTenantNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "tenant does not exist")
			}

			return errors.Wrap(findTenantErr, "failed to find tenant")
		}
		if !tenant.IsActive() {
			return errors.Wrap(domainerrors.ErrTenantNotFound, "tenant is inactive")
		}

		var findUserErr error
		user, findUserErr = repoFactory.UserRepo().FindByTenantAndEmail(ctx, tenantID, email)
		if findUserErr != nil {
			if errors.Is(findUserErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "no such user in tenant")
			}

			return errors.Wrap(findUserErr, "failed to find user by tenant and email")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken rotates the presented refresh token. The old record is revoked
// and a replacement is inserted in the same transaction, so a raw token can be
// redeemed at most once; replays and lost races both surface as
// ErrRefreshTokenInvalid.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token failed signature validation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	// New pair minted up front; it only leaves this function if the rotation commits.
	newAccessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(claims.UserID, claims.TenantID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate replacement tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		record, findErr := refreshRepo.FindActiveByHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or no longer active")
			}

			return errors.Wrap(findErr, "failed to find refresh token by hash")
		}

		// The signed subject and the stored session must agree.
		if record.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		if revokeErr := refreshRepo.Revoke(ctx, record.ID); revokeErr != nil {
			if errors.Is(revokeErr, repository.ErrRefreshTokenAlreadyRevoked) {
				// A concurrent refresh rotated this token first.
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already rotated")
			}

			return errors.Wrap(revokeErr, "failed to revoke rotated refresh token")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, claims.UserID, newRefreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", claims.UserID))

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes every active session of the user.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	// Single operation - use direct repository instance.
	if err := srv.refreshTokenRepo.RevokeAllByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh tokens", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", userID))

	return nil
}

// ChangePassword verifies the current credential, stores the new hash and
// revokes every active session in one transaction.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Attempting password change", slog.Any("userID", input.UserID))

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user no longer exists")
		}

		return errors.Wrap(err, "failed to find user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Any("userID", input.UserID))

		return errors.Wrap(domainerrors.ErrIncorrectPassword, "current password mismatch")
	}

	if err := srv.replacePassword(ctx, user.ID, input.NewPassword); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// ForgotPassword issues a reset token when the email resolves to a user inside
// an active tenant. Every path returns success so the endpoint cannot be used
// to probe which emails are registered. Delivery of the token is an external
// concern; the raw token never reaches the logs.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Debug("Password reset requested", slog.String("email", input.Email))

	if input.TenantID == uuid.Nil {
		srv.log(ctx).Debug("Password reset without tenant scope, ignoring")

		return nil
	}

	tenant, err := srv.tenantRepo.FindByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find tenant for password reset")
	}
	if !tenant.IsActive() {
		return nil
	}

	user, err := srv.userRepo.FindByTenantAndEmail(ctx, tenant.ID, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	if _, err := srv.tokenService.GenerateResetToken(user.ID, user.TenantID); err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	srv.log(ctx).Debug("Password reset token issued", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword redeems a reset token and replaces the credential.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Debug("Attempting password reset")

	claims, err := srv.tokenService.ValidateResetToken(input.ResetToken)
	if err != nil {
		srv.log(ctx).Warn("Reset token failed validation", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "invalid reset token")
	}

	if err := srv.replacePassword(ctx, claims.UserID, input.NewPassword); err != nil {
		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", claims.UserID))

	return nil
}

// replacePassword validates and hashes the new password, then atomically
// stores it and revokes every active session of the user.
func (srv *authService) replacePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := repoFactory.UserRepo().FindByID(ctx, userID); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user no longer exists")
			}

			return errors.Wrap(findErr, "failed to find user for password replacement")
		}

		if updateErr := repoFactory.UserRepo().UpdatePasswordHash(ctx, userID, hashedPassword); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update password hash")
		}

		if revokeErr := repoFactory.RefreshTokenRepo().RevokeAllByUserID(ctx, userID); revokeErr != nil {
			return errors.Wrap(revokeErr, "failed to revoke sessions after password change")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password replacement transaction", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to execute password replacement transaction")
	}

	return nil
}

// GetProfile loads the sanitized profile of a user.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserProfile(user), nil
}

// ListTenantUsers lists the sanitized profiles of every user in a tenant.
func (srv *authService) ListTenantUsers(ctx context.Context, tenantID uuid.UUID) ([]*usecase.UserProfile, error) {
	users, err := srv.userRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by tenant")
	}

	profiles := make([]*usecase.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, toUserProfile(user))
	}

	return profiles, nil
}

// UpdateTenantUser applies the non-nil input fields to a user inside the
// caller's tenant. A user ID belonging to another tenant surfaces as
// ErrUserNotFound so IDs cannot be probed across tenant boundaries.
func (srv *authService) UpdateTenantUser(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserProfile, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", input.UserID), slog.Any("tenantID", input.TenantID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(findErr, "failed to find user for update")
		}
		if user.TenantID != input.TenantID {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user belongs to another tenant")
		}

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Status != nil {
			user.Status = entity.UserStatus(*input.Status)
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", updatedUser.ID))

	return toUserProfile(updatedUser), nil
}

// requireActiveTenant loads a tenant and rejects missing or suspended ones.
func (srv *authService) requireActiveTenant(ctx context.Context, tenantRepo repository.TenantRepository, tenantID uuid.UUID) (*entity.Tenant, error) {
	tenant, err := tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant does not exist")
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	if !tenant.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant is inactive")
	}

	return tenant, nil
}

// storeRefreshToken hashes the raw refresh token and persists the session
// record. When a session limit is configured the count and the insert happen
// in the caller's transaction; a rotation revokes its old record first, so a
// user at the limit can still refresh.
func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		activeSessions, err := refreshRepo.CountActiveByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// toUserProfile strips the credential material off a user entity.
func toUserProfile(user *entity.User) *usecase.UserProfile {
	return &usecase.UserProfile{
		ID:          user.ID,
		TenantID:    user.TenantID,
		Email:       user.Email,
		FullName:    user.FullName,
		Status:      user.Status.String(),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
