// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when no active refresh token matches.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenAlreadyRevoked is returned when a revoke targets a token
	// that another request rotated first.
	ErrRefreshTokenAlreadyRevoked = errors.New("refresh token already revoked")
)

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// Tokens are revoked in place rather than deleted so the session history stays auditable.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindActiveByHash retrieves the unrevoked, unexpired refresh token record
	// matching the given hash. Returns ErrRefreshTokenNotFound otherwise.
	FindActiveByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Revoke marks a single token as revoked. The update is conditional on the
	// token still being unrevoked; ErrRefreshTokenAlreadyRevoked signals that a
	// concurrent rotation won the race.
	Revoke(ctx context.Context, id uuid.UUID) error

	// RevokeAllByUserID marks every active token of a user as revoked.
	// This backs logout and the revoke-on-password-change rule.
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveByUserID returns the number of live sessions for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
