package ports

import (
	"context"
	"time"

	"logging-web-server/internal/model"
	"logging-web-server/internal/security"
)

type TokenRepositoryInterface interface {
	Save(ctx context.Context, token *model.IssuedToken) error
	FindActive(ctx context.Context, userUUID string, accessToken string) (*model.IssuedToken, error)
	FindActiveByRefresh(ctx context.Context, userUUID string, refreshToken string) (*model.IssuedToken, error)
	Revoke(ctx context.Context, userUUID string, accessToken string) error
	ListStale(ctx context.Context, retention time.Duration) ([]model.IssuedToken, error)
	PurgeStale(ctx context.Context, retention time.Duration) (int64, error)
}

type TokenCodec interface {
	Mint(subject string, purpose security.TokenPurpose, ttlOverride ...time.Duration) (string, error)
	Decode(tokenStr string, purpose security.TokenPurpose) (*security.Claims, error)
}
