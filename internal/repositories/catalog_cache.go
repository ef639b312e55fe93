package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/movielog/movielog/internal/logger"
)

// CatalogCacheRepository caches raw upstream catalog payloads in Redis
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

// NewCatalogCacheRepository creates a new repository instance with a TTL
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached payload by key. Returns an error on a cache miss.
func (r *CatalogCacheRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog payload not found in cache for %s", key)
		}
		return nil, err
	}

	return json.RawMessage(val), nil
}

// Set caches a payload under the given key with the configured expiration
func (r *CatalogCacheRepository) Set(ctx context.Context, key string, payload json.RawMessage) error {
	err := r.client.Set(ctx, key, []byte(payload), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"size", len(payload),
		"error", err,
	)

	return err
}
