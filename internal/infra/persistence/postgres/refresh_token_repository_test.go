package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockGormDB opens a gorm connection backed by sqlmock so repository SQL
// can be asserted without a live database.
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestRefreshTokenRepository_CreateRefreshToken(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	generatedID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "refresh_tokens"`)).
		WithArgs(userID, "token-hash", sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID))

	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "token-hash",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	require.NoError(t, repo.CreateRefreshToken(context.Background(), token))
	assert.Equal(t, generatedID, token.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindActiveByHash(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	id := uuid.New()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)
	createdAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "refresh_tokens" WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $2`)).
		WithArgs("token-hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}).
			AddRow(id, userID, "token-hash", expiresAt, createdAt, nil))

	token, err := repo.FindActiveByHash(context.Background(), "token-hash")

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, id, token.ID)
	assert.Equal(t, userID, token.UserID)
	assert.Nil(t, token.RevokedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindActiveByHash_NotFound(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "refresh_tokens"`)).
		WithArgs("missing-hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}))

	token, err := repo.FindActiveByHash(context.Background(), "missing-hash")

	require.Error(t, err)
	assert.Nil(t, token)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_Revoke(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "refresh_tokens" SET "revoked_at"=$1 WHERE id = $2 AND revoked_at IS NULL`)).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Revoke(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_Revoke_AlreadyRevoked(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	id := uuid.New()

	// Zero rows affected: a concurrent rotation revoked this row first.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "refresh_tokens" SET "revoked_at"=$1 WHERE id = $2 AND revoked_at IS NULL`)).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Revoke(context.Background(), id)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenAlreadyRevoked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_RevokeAllByUserID(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "refresh_tokens" SET "revoked_at"=$1 WHERE user_id = $2 AND revoked_at IS NULL`)).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RevokeAllByUserID(context.Background(), userID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_RevokeAllByUserID_NoSessions(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	userID := uuid.New()

	// Revoking zero sessions is not an error.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "refresh_tokens" SET "revoked_at"=$1 WHERE user_id = $2 AND revoked_at IS NULL`)).
		WithArgs(sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.RevokeAllByUserID(context.Background(), userID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_CountActiveByUserID(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewRefreshTokenRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "refresh_tokens" WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > $2`)).
		WithArgs(userID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByUserID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
