package cache

import (
	"fmt"

	"github.com/kdirani/farms/internal/infrastructure/config"
	"go.uber.org/zap"
)

// PageCacheFactory creates page caches based on configuration
type PageCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// PageCacheFactoryOption is a functional option for configuring the factory
type PageCacheFactoryOption func(*PageCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) PageCacheFactoryOption {
	return func(f *PageCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to memory when Redis is unavailable
func WithInMemoryFallback(allow bool) PageCacheFactoryOption {
	return func(f *PageCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewPageCacheFactory creates a new factory
func NewPageCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...PageCacheFactoryOption) *PageCacheFactory {
	f := &PageCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the configured cache. A redis cache that cannot connect
// falls back to memory when allowed; pages are then per instance.
func (f *PageCacheFactory) Create() (PageCache, error) {
	if f.cacheConfig.Type != "redis" {
		f.logger.Info("using in-memory page cache")
		return NewMemoryPageCache(), nil
	}

	store, err := NewRedisPageCache(f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis page cache", zap.String("addr", f.redisConfig.Addr()))
		return store, nil
	}
	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for page cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory page cache. "+
		"Invalidations will not reach other instances.",
		zap.Error(err),
	)
	return NewMemoryPageCache(), nil
}
