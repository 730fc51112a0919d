package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenRepository(t *testing.T) (*repository.TokenRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewTokenRepository(&config.Database{DB: sqlxDB}), mock
}

func testIssuedToken() *model.IssuedToken {
	return &model.IssuedToken{
		UUID:         "token-uuid-1",
		UserUUID:     "user-uuid-1",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestTokenRepository_Save(t *testing.T) {
	repo, mock := newTestTokenRepository(t)
	token := testIssuedToken()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO issued_tokens`)).
		WithArgs(token.UUID, token.UserUUID, token.AccessToken, token.RefreshToken, token.Active, token.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), token)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Save_Duplicate(t *testing.T) {
	repo, mock := newTestTokenRepository(t)
	token := testIssuedToken()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO issued_tokens`)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Save(context.Background(), token)
	assert.ErrorIs(t, err, repository.ErrDuplicateToken)
}

func TestTokenRepository_FindActive(t *testing.T) {
	repo, mock := newTestTokenRepository(t)
	stored := testIssuedToken()

	rows := sqlmock.NewRows([]string{"uuid", "user_uuid", "access_token", "refresh_token", "active", "created_at"}).
		AddRow(stored.UUID, stored.UserUUID, stored.AccessToken, stored.RefreshToken, stored.Active, stored.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_uuid = $1 AND access_token = $2 AND active = TRUE`)).
		WithArgs(stored.UserUUID, stored.AccessToken).
		WillReturnRows(rows)

	token, err := repo.FindActive(context.Background(), stored.UserUUID, stored.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, stored.AccessToken, token.AccessToken)
	assert.True(t, token.Active)
}

func TestTokenRepository_FindActive_NotFound(t *testing.T) {
	repo, mock := newTestTokenRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_uuid = $1 AND access_token = $2 AND active = TRUE`)).
		WithArgs("user-uuid-1", "revoked-access").
		WillReturnError(sql.ErrNoRows)

	// отсутствие или отозванность записи не ошибка, просто nil
	token, err := repo.FindActive(context.Background(), "user-uuid-1", "revoked-access")
	assert.NoError(t, err)
	assert.Nil(t, token)
}

func TestTokenRepository_Revoke_NoMatchIsNoop(t *testing.T) {
	repo, mock := newTestTokenRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE issued_tokens SET active = FALSE`)).
		WithArgs("user-uuid-1", "unknown-access").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Revoke(context.Background(), "user-uuid-1", "unknown-access")
	assert.NoError(t, err)
}

func TestTokenRepository_PurgeStale(t *testing.T) {
	repo, mock := newTestTokenRepository(t)

	// граница строгая: удаляются только записи строго старше окна (created_at < cutoff)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM issued_tokens WHERE created_at < $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.PurgeStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_ListStale(t *testing.T) {
	repo, mock := newTestTokenRepository(t)
	stale := testIssuedToken()
	stale.Active = false

	rows := sqlmock.NewRows([]string{"uuid", "user_uuid", "access_token", "refresh_token", "active", "created_at"}).
		AddRow(stale.UUID, stale.UserUUID, stale.AccessToken, stale.RefreshToken, stale.Active, stale.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE created_at < $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	tokens, err := repo.ListStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	// чистка по возрасту не смотрит на флаг active
	assert.False(t, tokens[0].Active)
}
