package ports

import (
	"context"

	"logging-web-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetLog(ctx context.Context, entry *model.LogEntry) error
	GetLog(ctx context.Context, id int64) (*model.LogEntry, error)
	DeleteLog(ctx context.Context, id int64) error
}
