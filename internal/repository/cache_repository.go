package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository : Redis слой для отдельных записей логов
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetLog(ctx context.Context, entry *model.LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return util.LogError("ошибка сериализации записи лога", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(entry.ID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetLog(ctx context.Context, id int64) (*model.LogEntry, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения записи лога из Redis", err)
	}

	var entry model.LogEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, util.LogError("ошибка десериализации записи лога из кэша", err)
	}
	return &entry, nil
}

func (r *CacheRepository) DeleteLog(ctx context.Context, id int64) error {
	if err := r.client.Client.Del(ctx, r.key(id)).Err(); err != nil {
		return util.LogError("ошибка удаления записи лога из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id int64) string {
	return fmt.Sprintf("log:%d", id)
}
