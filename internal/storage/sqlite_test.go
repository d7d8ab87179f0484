package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shelftools/shelf/internal/storage"
)

func TestSQLiteStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.db")
	ctx := context.Background()

	s, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	if err := s.Set(ctx, "folders", []byte(`[{"id":"f1"}]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	data, err := s.Get(ctx, "folders")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if string(data) != `[{"id":"f1"}]` {
		t.Errorf("data mismatch: got %s", data)
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "shelf.db"))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	_, err = s.Get(context.Background(), "folders")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	s, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "shelf.db"))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "folders", []byte("old")); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := s.Set(ctx, "folders", []byte("new")); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	data, err := s.Get(ctx, "folders")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("expected overwritten data, got %s", data)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.db")
	ctx := context.Background()

	s, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	if err := s.Set(ctx, "folders", []byte("persisted")); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	data, err := reopened.Get(ctx, "folders")
	if err != nil {
		t.Fatalf("failed to get after reopen: %v", err)
	}
	if string(data) != "persisted" {
		t.Errorf("data mismatch after reopen: got %s", data)
	}
}
