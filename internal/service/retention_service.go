package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/ports"
)

// RetentionService : фоновая чистка реестра выданных токенов.
// Отдельная операция, а не побочный эффект logout:
// завершение сессии и уборка таблицы — разные задачи
type RetentionService struct {
	tokenRepository ports.TokenRepositoryInterface
	archiveStorage  ports.ArchiveStorage
	retention       time.Duration
	interval        time.Duration
	archive         bool
}

func NewRetentionService(
	tokenRepository ports.TokenRepositoryInterface,
	archiveStorage ports.ArchiveStorage,
	cfg *config.RetentionConfig,
) (*RetentionService, error) {
	retention, err := time.ParseDuration(cfg.Retention)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга retention: %w", err)
	}

	interval, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга interval: %w", err)
	}

	return &RetentionService{
		tokenRepository: tokenRepository,
		archiveStorage:  archiveStorage,
		retention:       retention,
		interval:        interval,
		archive:         cfg.Archive,
	}, nil
}

// Run запускает периодическую чистку до отмены контекста.
// Первый проход выполняется сразу при старте
func (s *RetentionService) Run(ctx context.Context) {
	log.Printf("чистка реестра токенов запущена: retention=%s, interval=%s", s.retention, s.interval)

	if err := s.PurgeOnce(ctx); err != nil {
		log.Printf("ошибка чистки реестра токенов: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("чистка реестра токенов остановлена")
			return
		case <-ticker.C:
			if err := s.PurgeOnce(ctx); err != nil {
				log.Printf("ошибка чистки реестра токенов: %v", err)
			}
		}
	}
}

// PurgeOnce архивирует и удаляет записи старше окна хранения.
// Неудачная архивация не блокирует удаление
func (s *RetentionService) PurgeOnce(ctx context.Context) error {
	if s.archive && s.archiveStorage != nil {
		if err := s.archiveStale(ctx); err != nil {
			log.Printf("не удалось архивировать устаревшие токены: %v", err)
		}
	}

	deleted, err := s.tokenRepository.PurgeStale(ctx, s.retention)
	if err != nil {
		return err
	}

	if deleted > 0 {
		log.Printf("удалено %d устаревших записей реестра токенов", deleted)
	}
	return nil
}

func (s *RetentionService) archiveStale(ctx context.Context) error {
	stale, err := s.tokenRepository.ListStale(ctx, s.retention)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	body, err := json.Marshal(stale)
	if err != nil {
		return fmt.Errorf("ошибка сериализации архива: %w", err)
	}

	key := fmt.Sprintf("issued-tokens/%s.json", time.Now().UTC().Format("20060102T150405"))
	return s.archiveStorage.PutArchive(ctx, key, body)
}
