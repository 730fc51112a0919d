package service

import (
	"context"
	"fmt"
	"unicode"

	"logging-web-server/internal/model"
	"logging-web-server/internal/ports"
	"logging-web-server/internal/security"

	"github.com/google/uuid"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

// Register создаёт нового пользователя.
// Регистрация сообщает о занятом имени (repository.ErrUserExists) —
// это известная утечка существующих имён, поведение сохранено сознательно
func (s *UserService) Register(ctx context.Context, name, password, passwordConfirm string) (*model.User, error) {
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		UUID:         uuid.New().String(),
		Name:         name,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func validateName(name string) error {
	if len(name) < 3 {
		return fmt.Errorf("имя должно быть не меньше 3 символов")
	}
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			return fmt.Errorf("имя должно содержать только латинские буквы и цифры")
		}
	}
	return nil
}

// ChangePassword меняет пароль пользователя после проверки старого
func (s *UserService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword, newPasswordConfirm string) error {
	if newPassword != newPasswordConfirm {
		return ErrPasswordMismatch
	}

	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return err
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	return s.userRepository.UpdatePassword(ctx, userUUID, hash)
}

// ListUsers возвращает страницу пользователей
func (s *UserService) ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.userRepository.ListUsers(ctx, cursor, limit)
}
