package ports

import (
	"context"

	"logging-web-server/internal/model"
	"logging-web-server/internal/security"
)

type AuthenticationService interface {
	Login(ctx context.Context, name, password string) (*model.TokensPair, error)
	Logout(ctx context.Context, accessToken string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Authorize(ctx context.Context, credentials security.Credentials) (*security.Identity, error)
	IsValidUser(ctx context.Context, name, password string) bool
	IsAdmin(ctx context.Context, name, password string) bool
}
