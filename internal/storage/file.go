package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileStore keeps each blob in its own JSON file under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) blobPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Get reads the named blob. Returns ErrNotFound if the file doesn't exist.
func (s *FileStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.blobPath(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set writes the named blob. The write goes through a temp file and a
// rename so a crash never leaves a half-written blob behind.
func (s *FileStore) Set(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	path := s.blobPath(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Close is a no-op; the FileStore holds no resources.
func (s *FileStore) Close() error {
	return nil
}
