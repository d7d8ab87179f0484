package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shelftools/shelf/internal/config"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "file" {
		t.Errorf("expected file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path == "" {
		t.Error("expected a default storage path")
	}
	if cfg.Favicon.CacheDir == "" {
		t.Error("expected a derived icon cache dir")
	}
	if cfg.Preferences.SortPrimary != "none" {
		t.Errorf("expected sortPrimary 'none', got %q", cfg.Preferences.SortPrimary)
	}
}

func TestLoad_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  backend: sqlite
  path: /tmp/shelf-test
log:
  level: debug
locale: de
preferences:
  sortPrimary: alphabetical:asc
  viewType: list
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend mismatch: got %q, want %q", cfg.Storage.Backend, "sqlite")
	}
	if cfg.Storage.Path != "/tmp/shelf-test" {
		t.Errorf("path mismatch: got %q", cfg.Storage.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level mismatch: got %q", cfg.Log.Level)
	}
	if cfg.Locale != "de" {
		t.Errorf("locale mismatch: got %q", cfg.Locale)
	}
	if cfg.Preferences.SortPrimary != "alphabetical:asc" {
		t.Errorf("sortPrimary mismatch: got %q", cfg.Preferences.SortPrimary)
	}
	if cfg.Preferences.ViewType != "list" {
		t.Errorf("viewType mismatch: got %q", cfg.Preferences.ViewType)
	}
	// untouched sections keep defaults
	if cfg.Favicon.TimeoutSeconds != 10 {
		t.Errorf("expected default favicon timeout, got %d", cfg.Favicon.TimeoutSeconds)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("SHELF_STORAGE_BACKEND", "redis")
	t.Setenv("SHELF_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHELF_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "redis" {
		t.Errorf("env should win: got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr mismatch: got %q", cfg.Storage.Redis.Addr)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level mismatch: got %q", cfg.Log.Level)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: carrier-pigeon\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unknown backend")
	}
}
