package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/shelftools/shelf/internal/config"
)

// ErrNotFound reports that a named blob does not exist yet.
var ErrNotFound = errors.New("blob not found")

// BlobStore persists named blobs. The collection lives in a single blob;
// backends never see inside it.
type BlobStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, data []byte) error
	Close() error
}

// Open builds the blob store selected by the storage config.
func Open(cfg config.Storage) (BlobStore, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Path), nil
	case "sqlite":
		return NewSQLiteStore(filepath.Join(cfg.Path, "shelf.db"))
	case "redis":
		return NewRedisStore(cfg.Redis), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
