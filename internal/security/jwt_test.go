package security_test

import (
	"testing"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *security.JWTService {
	t.Helper()
	service, err := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "access-secret-for-tests",
		RefreshSecretKey: "refresh-secret-for-tests",
		AccessTokenTTL:   "30m",
		RefreshTokenTTL:  "168h",
	})
	require.NoError(t, err)
	return service
}

func TestJWTService_MintDecode(t *testing.T) {
	service := newTestJWTService(t)

	token, err := service.Mint("user-123", security.PurposeAccess)
	require.NoError(t, err)

	claims, err := service.Decode(token, security.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestJWTService_PurposeMismatch(t *testing.T) {
	service := newTestJWTService(t)

	accessToken, err := service.Mint("user-123", security.PurposeAccess)
	require.NoError(t, err)
	refreshToken, err := service.Mint("user-123", security.PurposeRefresh)
	require.NoError(t, err)

	// access токен нельзя проверить refresh-секретом и наоборот
	_, err = service.Decode(accessToken, security.PurposeRefresh)
	assert.ErrorIs(t, err, security.ErrInvalidToken)

	_, err = service.Decode(refreshToken, security.PurposeAccess)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestJWTService(t)

	token, err := service.Mint("user-123", security.PurposeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = service.Decode(token, security.PurposeAccess)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	service := newTestJWTService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := service.Decode(token, security.PurposeAccess)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	}
}

func TestJWTService_TTLOverride(t *testing.T) {
	service := newTestJWTService(t)

	token, err := service.Mint("user-123", security.PurposeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := service.Decode(token, security.PurposeAccess)
	require.NoError(t, err)

	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, expiresIn, 55*time.Minute)
	assert.LessOrEqual(t, expiresIn, time.Hour)
}

func TestNewJWTService_BadConfig(t *testing.T) {
	_, err := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "",
		RefreshSecretKey: "secret",
		AccessTokenTTL:   "30m",
		RefreshTokenTTL:  "168h",
	})
	assert.Error(t, err)

	_, err = security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "secret",
		RefreshSecretKey: "secret2",
		AccessTokenTTL:   "not-a-duration",
		RefreshTokenTTL:  "168h",
	})
	assert.Error(t, err)
}
