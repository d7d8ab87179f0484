package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shelftools/shelf/internal/config"
)

// KeyPrefixBlob is the prefix for blob keys.
const KeyPrefixBlob = "shelf:blob:"

// RedisStore keeps blobs in Redis. Blobs are primary data here, so keys
// never expire.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore from connection settings.
func NewRedisStore(cfg config.Redis) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client}
}

// BlobKey returns the Redis key for a blob by name.
func BlobKey(name string) string {
	return KeyPrefixBlob + name
}

// Get reads the named blob. Returns ErrNotFound if the key doesn't exist.
func (s *RedisStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, BlobKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blob %s: %w", name, err)
	}
	return data, nil
}

// Set writes the named blob.
func (s *RedisStore) Set(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, BlobKey(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save blob %s: %w", name, err)
	}
	return nil
}

// Close closes the client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
