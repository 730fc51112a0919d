package security

import (
	"logging-web-server/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword хэширует пароль через bcrypt.
// Соль генерируется на каждый вызов, поэтому два хэша одного пароля различаются
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("не удалось создать хэш пароля", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хэшем
func CheckPassword(password string, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
