package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrUserExists     = errors.New("пользователь уже существует")
	ErrUserNotFound   = errors.New("пользователь не найден")
	ErrDuplicateToken = errors.New("токен с таким значением уже существует")
	ErrLogNotFound    = errors.New("запись лога не найдена")
)

// isUniqueViolation проверяет код ошибки Postgres 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
