package model

import "time"

// IssuedToken : запись реестра выданных токенов.
// Несколько активных записей на одного пользователя допустимы,
// уникальность обеспечивается БД по значениям самих токенов
type IssuedToken struct {
	UUID         string    `db:"uuid"`
	UserUUID     string    `db:"user_uuid"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (для получения новой пары)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}
