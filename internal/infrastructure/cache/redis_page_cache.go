package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN during invalidation
const scanBatch = 200

// RedisPageCache implements PageCache on Redis so every server instance
// sees the same pages and the same invalidations.
type RedisPageCache struct {
	client *redis.Client
}

// NewRedisPageCache connects to Redis and verifies the connection
func NewRedisPageCache(cfg config.RedisConfig) (*RedisPageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisPageCache{client: client}, nil
}

// NewRedisPageCacheWithClient wraps an existing client
func NewRedisPageCacheWithClient(client *redis.Client) *RedisPageCache {
	return &RedisPageCache{client: client}
}

// Get returns the cached body
func (c *RedisPageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read page %s: %w", key, err)
	}
	return body, true, nil
}

// Set stores body with ttl
func (c *RedisPageCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, body, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store page %s: %w", key, err)
	}
	return nil
}

// InvalidatePrefix walks matching keys with SCAN and deletes them in batches
func (c *RedisPageCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	pattern := escapeGlob(prefixKey(prefix)) + "*"
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate %s: %w", prefix, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", prefix, err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate %s: %w", prefix, err)
		}
	}
	return nil
}

// Ping checks the connection
func (c *RedisPageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the client
func (c *RedisPageCache) Close() error {
	return c.client.Close()
}

// escapeGlob escapes the characters Redis MATCH treats as pattern syntax
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
