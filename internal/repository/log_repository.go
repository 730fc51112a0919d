package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type LogRepository struct {
	*config.Database
}

func NewLogRepository(database *config.Database) *LogRepository {
	return &LogRepository{database}
}

// Create : сохраняет новую запись лога, возвращает её id
func (r *LogRepository) Create(ctx context.Context, entry *model.LogEntry) (int64, error) {
	query := `
		INSERT INTO logs (host, service, message, severity, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowxContext(ctx, query,
		entry.Host,
		entry.Service,
		entry.Message,
		entry.Severity,
		entry.Timestamp,
	).Scan(&id)

	if err != nil {
		return 0, util.LogError("[LogRepo] ошибка вставки данных в БД", err)
	}

	return id, nil
}

// GetByID : возвращает запись лога по id
func (r *LogRepository) GetByID(ctx context.Context, id int64) (*model.LogEntry, error) {
	query := `SELECT id, host, service, message, severity, timestamp FROM logs WHERE id = $1`

	var entry model.LogEntry
	err := sqlx.GetContext(ctx, r.DB, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, util.LogError("[LogRepo] не удалось найти запись лога", err)
	}

	return &entry, nil
}

// List : список записей с фильтрами по severity и service (cursor по id)
// cursor хранит id последней записи предыдущей выборки,
// следующая страница начинается после него
func (r *LogRepository) List(ctx context.Context, severity, service, cursor string, limit int) ([]model.LogEntry, string, error) {
	query := `
		SELECT id, host, service, message, severity, timestamp
		FROM logs
		WHERE id > $1
	`
	args := []interface{}{int64(0)}

	if cursor != "" {
		cursorID, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor format: %w", err)
		}
		args[0] = cursorID
	}

	if severity != "" {
		args = append(args, severity)
		query += fmt.Sprintf(" AND severity = $%d", len(args))
	}
	if service != "" {
		args = append(args, service)
		query += fmt.Sprintf(" AND service = $%d", len(args))
	}

	args = append(args, limit+1) // +1 для проверки наличия следующей страницы
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d", len(args))

	var entries []model.LogEntry
	err := sqlx.SelectContext(ctx, r.DB, &entries, query, args...)
	if err != nil {
		return nil, "", util.LogError("[LogRepo] не удалось получить список записей", err)
	}

	var nextCursor string
	if len(entries) > limit {
		entries = entries[:limit]
		nextCursor = strconv.FormatInt(entries[len(entries)-1].ID, 10)
	}

	return entries, nextCursor, nil
}

// Delete : удаляет запись лога по id
func (r *LogRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM logs WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return util.LogError("[LogRepo] не удалось удалить запись лога", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[LogRepo] не удалось проверить, удалена ли запись", err)
	}
	if rowsAffected == 0 {
		return ErrLogNotFound
	}

	return nil
}
