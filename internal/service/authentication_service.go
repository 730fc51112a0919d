package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"logging-web-server/internal/model"
	"logging-web-server/internal/ports"
	"logging-web-server/internal/security"
	"logging-web-server/internal/util"

	"github.com/google/uuid"
)

// AuthenticationService : авторизационный шлюз и жизненный цикл токенов.
// Состояние между запросами не хранится: каждая проверка заново
// спрашивает кодек (подпись, срок) и реестр (не отозван ли токен)
type AuthenticationService struct {
	tokenRepository ports.TokenRepositoryInterface
	tokenCodec      ports.TokenCodec
	userRepository  ports.UserRepository
}

func NewAuthenticationService(
	tokenRepository ports.TokenRepositoryInterface,
	tokenCodec ports.TokenCodec,
	userRepository ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		tokenRepository,
		tokenCodec,
		userRepository,
	}
}

// Login проверяет пароль, выпускает пару токенов и записывает её в реестр.
// Одновременные сессии одного пользователя допустимы,
// каждая даёт независимую запись в issued_tokens
func (s *AuthenticationService) Login(ctx context.Context, name, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByName(ctx, name)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.UUID)
}

func (s *AuthenticationService) issueTokens(ctx context.Context, userUUID string) (*model.TokensPair, error) {
	accessToken, err := s.tokenCodec.Mint(userUUID, security.PurposeAccess)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации access токена: %w", err)
	}

	refreshToken, err := s.tokenCodec.Mint(userUUID, security.PurposeRefresh)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации refresh токена: %w", err)
	}

	issued := &model.IssuedToken{
		UUID:         uuid.New().String(),
		UserUUID:     userUUID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.tokenRepository.Save(ctx, issued); err != nil {
		return nil, util.LogError("ошибка сохранения токенов в реестре", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout отзывает запись реестра по access токену.
// Повторный logout той же сессии не ошибка
func (s *AuthenticationService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokenCodec.Decode(accessToken, security.PurposeAccess)
	if err != nil {
		return ErrUnauthenticated
	}

	if err := s.tokenRepository.Revoke(ctx, claims.Subject, accessToken); err != nil {
		return fmt.Errorf("не удалось отозвать токен: %w", err)
	}

	return nil
}

// RefreshTokens выпускает новую пару по refresh токену.
// Старая пара отзывается: refresh одноразовый
func (s *AuthenticationService) RefreshTokens(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.tokenCodec.Decode(refreshToken, security.PurposeRefresh)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	stored, err := s.tokenRepository.FindActiveByRefresh(ctx, claims.Subject, refreshToken)
	if err != nil {
		return nil, util.LogError("не удалось найти refresh токен в реестре", err)
	}
	if stored == nil {
		log.Printf("refresh токен пользователя %s не найден или отозван", claims.Subject)
		return nil, ErrUnauthenticated
	}

	if err := s.tokenRepository.Revoke(ctx, stored.UserUUID, stored.AccessToken); err != nil {
		return nil, util.LogError("не удалось отозвать старую пару токенов", err)
	}

	return s.issueTokens(ctx, stored.UserUUID)
}

// Authorize разрешает учётные данные запроса в Identity.
// Оба транспорта (Basic и Bearer) проходят через одну точку,
// маршруты не ветвятся по типу учётных данных сами
func (s *AuthenticationService) Authorize(ctx context.Context, credentials security.Credentials) (*security.Identity, error) {
	switch c := credentials.(type) {
	case security.BasicCredentials:
		user, err := s.userRepository.FindByName(ctx, c.Name)
		if err != nil {
			return nil, ErrUnauthenticated
		}
		if !security.CheckPassword(c.Password, user.PasswordHash) {
			return nil, ErrUnauthenticated
		}
		return &security.Identity{
			UserUUID: user.UUID,
			Name:     user.Name,
			IsAdmin:  user.IsAdmin,
		}, nil

	case security.BearerToken:
		claims, err := s.tokenCodec.Decode(c.Token, security.PurposeAccess)
		if err != nil {
			return nil, ErrUnauthenticated
		}

		stored, err := s.tokenRepository.FindActive(ctx, claims.Subject, c.Token)
		if err != nil {
			return nil, util.LogError("не удалось проверить токен в реестре", err)
		}
		if stored == nil {
			return nil, ErrUnauthenticated
		}

		user, err := s.userRepository.FindByUUID(ctx, claims.Subject)
		if err != nil {
			return nil, ErrUnauthenticated
		}
		return &security.Identity{
			UserUUID: user.UUID,
			Name:     user.Name,
			IsAdmin:  user.IsAdmin,
		}, nil
	}

	return nil, ErrUnauthenticated
}

// IsValidUser проверяет пару логин/пароль
func (s *AuthenticationService) IsValidUser(ctx context.Context, name, password string) bool {
	_, err := s.Authorize(ctx, security.BasicCredentials{Name: name, Password: password})
	return err == nil
}

// IsAdmin проверяет пару логин/пароль и флаг администратора
func (s *AuthenticationService) IsAdmin(ctx context.Context, name, password string) bool {
	identity, err := s.Authorize(ctx, security.BasicCredentials{Name: name, Password: password})
	return err == nil && identity.IsAdmin
}
