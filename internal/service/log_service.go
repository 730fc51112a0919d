package service

import (
	"context"
	"log"

	"logging-web-server/internal/model"
	"logging-web-server/internal/ports"
)

// LogService : CRUD по записям логов с кэшированием одиночных записей в Redis
type LogService struct {
	logRepository   ports.LogRepository
	cacheRepository ports.CacheRepository
}

func NewLogService(logRepository ports.LogRepository, cacheRepository ports.CacheRepository) *LogService {
	return &LogService{
		logRepository:   logRepository,
		cacheRepository: cacheRepository,
	}
}

func (s *LogService) CreateLog(ctx context.Context, entry *model.LogEntry) (int64, error) {
	if !model.ValidSeverity(entry.Severity) {
		return 0, ErrInvalidSeverity
	}

	id, err := s.logRepository.Create(ctx, entry)
	if err != nil {
		return 0, err
	}

	entry.ID = id
	if err := s.cacheRepository.SetLog(ctx, entry); err != nil {
		// кэш не критичен, запись уже в БД
		log.Printf("[LogService] не удалось сохранить запись в кэш: %v", err)
	}

	return id, nil
}

func (s *LogService) GetLog(ctx context.Context, id int64) (*model.LogEntry, error) {
	cached, err := s.cacheRepository.GetLog(ctx, id)
	if err == nil && cached != nil {
		return cached, nil
	}

	entry, err := s.logRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.SetLog(ctx, entry); err != nil {
		log.Printf("[LogService] не удалось сохранить запись в кэш: %v", err)
	}

	return entry, nil
}

func (s *LogService) ListLogs(ctx context.Context, severity, service, cursor string, limit int) ([]model.LogEntry, string, error) {
	if severity != "" && !model.ValidSeverity(severity) {
		return nil, "", ErrInvalidSeverity
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.logRepository.List(ctx, severity, service, cursor, limit)
}

func (s *LogService) DeleteLog(ctx context.Context, id int64) error {
	if err := s.logRepository.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cacheRepository.DeleteLog(ctx, id); err != nil {
		log.Printf("[LogService] не удалось удалить запись из кэша: %v", err)
	}

	return nil
}
