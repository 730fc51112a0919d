package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArchiveStorage
type MockArchiveStorage struct {
	mock.Mock
}

func (m *MockArchiveStorage) PutArchive(ctx context.Context, key string, body []byte) error {
	args := m.Called(ctx, key, body)
	return args.Error(0)
}

func retentionConfig(archive bool) *config.RetentionConfig {
	return &config.RetentionConfig{
		Retention: "24h",
		Interval:  "1h",
		Archive:   archive,
	}
}

func TestNewRetentionService_BadConfig(t *testing.T) {
	_, err := service.NewRetentionService(new(MockTokenRepository), nil, &config.RetentionConfig{
		Retention: "eternity",
		Interval:  "1h",
	})
	assert.Error(t, err)

	_, err = service.NewRetentionService(new(MockTokenRepository), nil, &config.RetentionConfig{
		Retention: "24h",
		Interval:  "",
	})
	assert.Error(t, err)
}

func TestRetentionService_PurgeOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("purges without archive", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		svc, err := service.NewRetentionService(tokenRepo, nil, retentionConfig(false))
		require.NoError(t, err)

		tokenRepo.On("PurgeStale", ctx, 24*time.Hour).Return(int64(3), nil)

		require.NoError(t, svc.PurgeOnce(ctx))
		tokenRepo.AssertNotCalled(t, "ListStale")
	})

	t.Run("archives before purge", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		archiveStorage := new(MockArchiveStorage)
		svc, err := service.NewRetentionService(tokenRepo, archiveStorage, retentionConfig(true))
		require.NoError(t, err)

		stale := []model.IssuedToken{
			{UUID: "token-uuid-1", UserUUID: "user-123", Active: false},
		}
		tokenRepo.On("ListStale", ctx, 24*time.Hour).Return(stale, nil)
		archiveStorage.On("PutArchive", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil)
		tokenRepo.On("PurgeStale", ctx, 24*time.Hour).Return(int64(1), nil)

		require.NoError(t, svc.PurgeOnce(ctx))
		archiveStorage.AssertExpectations(t)
	})

	t.Run("empty ledger skips archive upload", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		archiveStorage := new(MockArchiveStorage)
		svc, err := service.NewRetentionService(tokenRepo, archiveStorage, retentionConfig(true))
		require.NoError(t, err)

		tokenRepo.On("ListStale", ctx, 24*time.Hour).Return([]model.IssuedToken{}, nil)
		tokenRepo.On("PurgeStale", ctx, 24*time.Hour).Return(int64(0), nil)

		require.NoError(t, svc.PurgeOnce(ctx))
		archiveStorage.AssertNotCalled(t, "PutArchive")
	})

	t.Run("archive failure does not block purge", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		archiveStorage := new(MockArchiveStorage)
		svc, err := service.NewRetentionService(tokenRepo, archiveStorage, retentionConfig(true))
		require.NoError(t, err)

		stale := []model.IssuedToken{{UUID: "token-uuid-1"}}
		tokenRepo.On("ListStale", ctx, 24*time.Hour).Return(stale, nil)
		archiveStorage.On("PutArchive", ctx, mock.AnythingOfType("string"), mock.Anything).Return(errors.New("s3 down"))
		tokenRepo.On("PurgeStale", ctx, 24*time.Hour).Return(int64(1), nil)

		require.NoError(t, svc.PurgeOnce(ctx))
		tokenRepo.AssertExpectations(t)
	})

	t.Run("purge error is returned", func(t *testing.T) {
		tokenRepo := new(MockTokenRepository)
		svc, err := service.NewRetentionService(tokenRepo, nil, retentionConfig(false))
		require.NoError(t, err)

		tokenRepo.On("PurgeStale", ctx, 24*time.Hour).Return(int64(0), errors.New("db down"))

		assert.Error(t, svc.PurgeOnce(ctx))
	})
}
