package security

import (
	"errors"
	"fmt"
	"time"

	"logging-web-server/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose определяет, каким секретом подписывается токен и его TTL по умолчанию
type TokenPurpose int

const (
	PurposeAccess TokenPurpose = iota
	PurposeRefresh
)

var (
	// ErrInvalidToken : подпись не сошлась, структура битая или назначение не то
	ErrInvalidToken = errors.New("невалидный токен")
	// ErrExpiredToken : срок действия токена истёк
	ErrExpiredToken = errors.New("срок действия токена истёк")
)

type Claims struct {
	jwt.RegisteredClaims
}

// JWTService подписывает и проверяет access/refresh токены.
// У каждого назначения свой секрет и своё время жизни
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTService(cfg *config.JWTConfig) (*JWTService, error) {
	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга access_token_ttl: %w", err)
	}

	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга refresh_token_ttl: %w", err)
	}

	if cfg.AccessSecretKey == "" || cfg.RefreshSecretKey == "" {
		return nil, fmt.Errorf("секреты токенов не заданы в конфигурации")
	}

	return &JWTService{
		accessSecret:  []byte(cfg.AccessSecretKey),
		refreshSecret: []byte(cfg.RefreshSecretKey),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

func (service *JWTService) secret(purpose TokenPurpose) []byte {
	if purpose == PurposeRefresh {
		return service.refreshSecret
	}
	return service.accessSecret
}

func (service *JWTService) ttl(purpose TokenPurpose) time.Duration {
	if purpose == PurposeRefresh {
		return service.refreshTTL
	}
	return service.accessTTL
}

// Mint выпускает подписанный токен для subject.
// ttlOverride, если передан, заменяет TTL назначения
func (service *JWTService) Mint(subject string, purpose TokenPurpose, ttlOverride ...time.Duration) (string, error) {
	ttl := service.ttl(purpose)
	if len(ttlOverride) > 0 {
		ttl = ttlOverride[0]
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        fmt.Sprintf("%d", now.UnixNano()),
			Issuer:    "logging-web-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := jwtToken.SignedString(service.secret(purpose))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return signed, nil
}

// Decode проверяет подпись и срок действия токена.
// Возвращает ErrExpiredToken для просроченного и ErrInvalidToken для всего остального:
// вызывающий код трактует обе ошибки как "не аутентифицирован", а не как сбой
func (service *JWTService) Decode(tokenStr string, purpose TokenPurpose) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secret(purpose), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !jwtToken.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
