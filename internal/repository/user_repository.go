package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя.
// Имя уникально, при коллизии возвращается ErrUserExists
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, name, password_hash, is_admin)
	VALUES ($1, $2, $3, $4)
	RETURNING uuid, name, is_admin, created_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.UUID, user.Name, user.PasswordHash, user.IsAdmin).
		Scan(&createdUser.UUID, &createdUser.Name, &createdUser.IsAdmin, &createdUser.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT uuid, name, password_hash, is_admin, created_at FROM users WHERE uuid = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByName : ищет пользователя по имени
func (r *UserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	query := `SELECT uuid, name, password_hash, is_admin, created_at FROM users WHERE name = $1`
	var user model.User
	err := sqlx.GetContext(ctx, r.DB, &user, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по имени", err)
	}
	return &user, nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

// SetAdmin : выставляет флаг администратора
func (r *UserRepository) SetAdmin(ctx context.Context, uuid string, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $2 WHERE uuid = $1`
	_, err := r.DB.ExecContext(ctx, query, uuid, isAdmin)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить права пользователя", err)
	}
	return nil
}

// ListUsers : вывод списка пользователей с cursor-based пагинацией
func (r *UserRepository) ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error) {
	query := `
        SELECT uuid, name, password_hash, is_admin, created_at
        FROM users
        WHERE created_at > $1
        ORDER BY created_at ASC, uuid ASC
        LIMIT $2
    `

	var cursorTime time.Time
	var err error

	if cursor == "" {
		cursorTime = time.Time{}
	} else {
		cursorTime, err = time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor format: %w", err)
		}
	}

	var users []*model.User
	err = sqlx.SelectContext(ctx, r.DB, &users, query, cursorTime, limit+1) // +1 для проверки наличия следующей страницы
	if err != nil {
		return nil, "", util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}

	var nextCursor string
	if len(users) > limit {
		users = users[:limit]
		nextCursor = users[len(users)-1].CreatedAt.Format(time.RFC3339Nano)
	}

	return users, nextCursor, nil
}
