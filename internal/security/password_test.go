package security_test

import (
	"testing"

	"logging-web-server/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{"P@ssw0rd123", "пароль", "", "a"}

	for _, password := range passwords {
		hash, err := security.HashPassword(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)
		assert.True(t, security.CheckPassword(password, hash))
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := security.HashPassword("correct")
	require.NoError(t, err)

	assert.False(t, security.CheckPassword("wrong", hash))
	assert.False(t, security.CheckPassword("", hash))
	assert.False(t, security.CheckPassword("correct", "not-a-bcrypt-hash"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := security.HashPassword("same-password")
	require.NoError(t, err)
	second, err := security.HashPassword("same-password")
	require.NoError(t, err)

	// соль разная на каждый вызов, но оба хэша валидны
	assert.NotEqual(t, first, second)
	assert.True(t, security.CheckPassword("same-password", first))
	assert.True(t, security.CheckPassword("same-password", second))
}
