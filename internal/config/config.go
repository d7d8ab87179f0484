package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI wires together: where the collection is
// persisted, how it is logged, and the user's display preferences.
type Config struct {
	Storage     Storage     `yaml:"storage"`
	Log         Log         `yaml:"log"`
	Locale      string      `yaml:"locale"`
	AppDirs     []string    `yaml:"appDirs"`
	Favicon     Favicon     `yaml:"favicon"`
	Preferences Preferences `yaml:"preferences"`
}

// Storage selects the blob backend.
type Storage struct {
	Backend string `yaml:"backend"` // "file" | "sqlite" | "redis"
	Path    string `yaml:"path"`    // data directory for file and sqlite backends
	Redis   Redis  `yaml:"redis"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Pretty bool   `yaml:"pretty"` // console encoder instead of JSON
}

// Favicon configures the icon fetcher.
type Favicon struct {
	CacheDir       string `yaml:"cacheDir"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	Concurrency    int    `yaml:"concurrency"`
}

// Preferences are the user-facing display and sorting settings. They travel
// inside exported backups so a restore can carry them along.
type Preferences struct {
	SortPrimary      string `yaml:"sortPrimary" json:"sortPrimary"`
	SortSecondary    string `yaml:"sortSecondary" json:"sortSecondary"`
	SortTertiary     string `yaml:"sortTertiary" json:"sortTertiary"`
	ViewType         string `yaml:"viewType" json:"viewType"`
	ShowPreviewPane  bool   `yaml:"showPreviewPane" json:"showPreviewPane"`
	SeparateSections bool   `yaml:"separateSections" json:"separateSections"`
	DefaultColor     string `yaml:"defaultColor" json:"defaultColor"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: Storage{
			Backend: "file",
		},
		Log: Log{
			Level:  "warn",
			Pretty: true,
		},
		Locale:  "en",
		AppDirs: []string{"/Applications", "/usr/share/applications"},
		Favicon: Favicon{
			TimeoutSeconds: 10,
			Concurrency:    5,
		},
		Preferences: Preferences{
			SortPrimary:      "none",
			SortSecondary:    "none",
			SortTertiary:     "none",
			ViewType:         "grid",
			ShowPreviewPane:  true,
			SeparateSections: false,
			DefaultColor:     "blue",
		},
	}
}

// DefaultPath returns the default config path: ~/.config/shelf/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "shelf", "config.yaml"), nil
}

// Load reads the config file at path, fills missing fields with defaults,
// and applies SHELF_* environment overrides. A missing file is not an
// error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Storage.Path == "" {
		dataDir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.Storage.Path = dataDir
	}
	if cfg.Favicon.CacheDir == "" {
		cfg.Favicon.CacheDir = filepath.Join(cfg.Storage.Path, "icons")
	}

	switch cfg.Storage.Backend {
	case "file", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "shelf"), nil
}

func applyEnv(cfg *Config) {
	cfg.Storage.Backend = getenv("SHELF_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.Path = getenv("SHELF_STORAGE_PATH", cfg.Storage.Path)
	cfg.Storage.Redis.Addr = getenv("SHELF_REDIS_ADDR", cfg.Storage.Redis.Addr)
	cfg.Storage.Redis.Username = getenv("SHELF_REDIS_USERNAME", cfg.Storage.Redis.Username)
	cfg.Storage.Redis.Password = getenv("SHELF_REDIS_PASSWORD", cfg.Storage.Redis.Password)
	cfg.Storage.Redis.DB = getenvInt("SHELF_REDIS_DB", cfg.Storage.Redis.DB)

	cfg.Log.Level = getenv("SHELF_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = getenvBool("SHELF_PRETTY_LOG", cfg.Log.Pretty)

	cfg.Locale = getenv("SHELF_LOCALE", cfg.Locale)

	if v := os.Getenv("SHELF_APP_DIRS"); v != "" {
		cfg.AppDirs = filepath.SplitList(v)
	}

	cfg.Favicon.CacheDir = getenv("SHELF_ICON_CACHE_DIR", cfg.Favicon.CacheDir)
	cfg.Favicon.TimeoutSeconds = getenvInt("SHELF_FAVICON_TIMEOUT_SECONDS", cfg.Favicon.TimeoutSeconds)
	cfg.Favicon.Concurrency = getenvInt("SHELF_FAVICON_CONCURRENCY", cfg.Favicon.Concurrency)
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
