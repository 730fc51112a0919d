package ports

import "context"

// ArchiveStorage : для S3
type ArchiveStorage interface {
	PutArchive(ctx context.Context, key string, body []byte) error
}
