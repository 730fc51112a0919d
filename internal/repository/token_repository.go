package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

// TokenRepository : реестр выданных токенов.
// Все операции, кроме массовой чистки по возрасту, ограничены одним пользователем
type TokenRepository struct {
	*config.Database
}

func NewTokenRepository(database *config.Database) *TokenRepository {
	return &TokenRepository{database}
}

// Save сохраняет новую активную запись о выданной паре токенов.
// При коллизии значения access или refresh токена возвращает ErrDuplicateToken
func (r *TokenRepository) Save(ctx context.Context, token *model.IssuedToken) error {
	query := `INSERT INTO issued_tokens (uuid, user_uuid, access_token, refresh_token, active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		token.UUID,
		token.UserUUID,
		token.AccessToken,
		token.RefreshToken,
		token.Active,
		token.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateToken
		}
		return util.LogError("ошибка вставки данных в БД", err)
	}

	return nil
}

// FindActive ищет активную запись по пользователю и access токену.
// Возвращает nil без ошибки, если записи нет или она отозвана
func (r *TokenRepository) FindActive(ctx context.Context, userUUID string, accessToken string) (*model.IssuedToken, error) {
	query := `SELECT uuid, user_uuid, access_token, refresh_token, active, created_at
				FROM issued_tokens
				WHERE user_uuid = $1 AND access_token = $2 AND active = TRUE`

	token := &model.IssuedToken{}
	err := sqlx.GetContext(ctx, r.DB, token, query, userUUID, accessToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("ошибка при выполнении запроса", err)
	}

	return token, nil
}

// FindActiveByRefresh ищет активную запись по пользователю и refresh токену
func (r *TokenRepository) FindActiveByRefresh(ctx context.Context, userUUID string, refreshToken string) (*model.IssuedToken, error) {
	query := `SELECT uuid, user_uuid, access_token, refresh_token, active, created_at
				FROM issued_tokens
				WHERE user_uuid = $1 AND refresh_token = $2 AND active = TRUE`

	token := &model.IssuedToken{}
	err := sqlx.GetContext(ctx, r.DB, token, query, userUUID, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("ошибка при выполнении запроса", err)
	}

	return token, nil
}

// Revoke помечает запись неактивной.
// Если подходящей активной записи нет, это не ошибка: logout идемпотентен
func (r *TokenRepository) Revoke(ctx context.Context, userUUID string, accessToken string) error {
	query := `UPDATE issued_tokens SET active = FALSE
				WHERE user_uuid = $1 AND access_token = $2 AND active = TRUE`

	_, err := r.DB.ExecContext(ctx, query, userUUID, accessToken)
	if err != nil {
		return util.LogError("не удалось отозвать токен", err)
	}

	return nil
}

// ListStale возвращает записи старше retention, независимо от флага active.
// Используется для архивации перед удалением
func (r *TokenRepository) ListStale(ctx context.Context, retention time.Duration) ([]model.IssuedToken, error) {
	query := `SELECT uuid, user_uuid, access_token, refresh_token, active, created_at
				FROM issued_tokens
				WHERE created_at < $1`

	var tokens []model.IssuedToken
	err := sqlx.SelectContext(ctx, r.DB, &tokens, query, time.Now().UTC().Add(-retention))
	if err != nil {
		return nil, util.LogError("не удалось получить список устаревших токенов", err)
	}

	return tokens, nil
}

// PurgeStale удаляет записи старше retention по всем пользователям.
// Граница строгая: запись ровно на границе окна не удаляется.
// Возвращает количество удалённых записей
func (r *TokenRepository) PurgeStale(ctx context.Context, retention time.Duration) (int64, error) {
	query := `DELETE FROM issued_tokens WHERE created_at < $1`

	result, err := r.DB.ExecContext(ctx, query, time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, util.LogError("не удалось удалить устаревшие токены", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("не удалось проверить, сколько токенов удалено", err)
	}

	return deleted, nil
}
