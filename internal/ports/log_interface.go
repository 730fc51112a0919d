package ports

import (
	"context"

	"logging-web-server/internal/model"
)

// LogRepository : SQL слой
type LogRepository interface {
	Create(ctx context.Context, entry *model.LogEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.LogEntry, error)
	List(ctx context.Context, severity, service, cursor string, limit int) ([]model.LogEntry, string, error)
	Delete(ctx context.Context, id int64) error
}

type LogService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) (int64, error)
	GetLog(ctx context.Context, id int64) (*model.LogEntry, error)
	ListLogs(ctx context.Context, severity, service, cursor string, limit int) ([]model.LogEntry, string, error)
	DeleteLog(ctx context.Context, id int64) error
}
