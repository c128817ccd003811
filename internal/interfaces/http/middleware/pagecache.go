package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CacheStatusHeader reports HIT or MISS on cacheable requests
const CacheStatusHeader = "X-Cache"

// PageCacheConfig configures the GET response cache
type PageCacheConfig struct {
	Cache cache.PageCache
	TTL   time.Duration
	// BasePath is stripped from the request path so keys line up with the
	// page prefixes services invalidate, e.g. "/api/v1"
	BasePath string
}

// capturingWriter keeps a copy of the response body
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache serves GET requests from the page cache and stores successful
// JSON responses. Failures of the cache itself never fail the request.
func PageCache(cfg PageCacheConfig) gin.HandlerFunc {
	if cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		path := strings.TrimPrefix(c.Request.URL.Path, cfg.BasePath)
		key := cache.PageKey(path, c.Request.URL.RawQuery)

		body, ok, err := cfg.Cache.Get(ctx, key)
		if err != nil {
			logger.FromContext(ctx).Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			c.Header(CacheStatusHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		c.Header(CacheStatusHeader, "MISS")
		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
			return
		}
		if err := cfg.Cache.Set(ctx, key, w.body.Bytes(), cfg.TTL); err != nil {
			logger.FromContext(ctx).Warn("page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}
