package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPageCache struct{}

func (failingPageCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis down")
}

func (failingPageCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis down")
}

func (failingPageCache) InvalidatePrefix(context.Context, string) error {
	return errors.New("redis down")
}

func newCachedRouter(pc cache.PageCache, calls *int, status int) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1", PageCache(PageCacheConfig{Cache: pc, TTL: time.Minute, BasePath: "/api/v1"}))
	api.GET("/farms", func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"success": status == http.StatusOK, "data": *calls})
	})
	api.POST("/farms", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	api.GET("/invoices/:id/pdf", func(c *gin.Context) {
		*calls++
		c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.7"))
	})
	return router
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPageCache_HitAfterMiss(t *testing.T) {
	pc := cache.NewMemoryPageCache()
	calls := 0
	router := newCachedRouter(pc, &calls, http.StatusOK)

	first := get(router, "/api/v1/farms?active=true")
	assert.Equal(t, "MISS", first.Header().Get(CacheStatusHeader))

	second := get(router, "/api/v1/farms?active=true")
	assert.Equal(t, "HIT", second.Header().Get(CacheStatusHeader))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)

	body, ok, err := pc.Get(context.Background(), "page:/farms?active=true")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"success":true,"data":1}`, string(body))

	// a different query is a different page
	get(router, "/api/v1/farms")
	assert.Equal(t, 2, calls)
}

func TestPageCache_InvalidationDropsPage(t *testing.T) {
	pc := cache.NewMemoryPageCache()
	calls := 0
	router := newCachedRouter(pc, &calls, http.StatusOK)

	get(router, "/api/v1/farms")
	require.NoError(t, pc.InvalidatePrefix(context.Background(), "/farms"))
	w := get(router, "/api/v1/farms")

	assert.Equal(t, "MISS", w.Header().Get(CacheStatusHeader))
	assert.Equal(t, 2, calls)
}

func TestPageCache_SkipsNonCacheable(t *testing.T) {
	t.Run("error responses", func(t *testing.T) {
		pc := cache.NewMemoryPageCache()
		calls := 0
		router := newCachedRouter(pc, &calls, http.StatusNotFound)

		get(router, "/api/v1/farms")
		get(router, "/api/v1/farms")
		assert.Equal(t, 2, calls)
		assert.Zero(t, pc.Len())
	})

	t.Run("writes", func(t *testing.T) {
		pc := cache.NewMemoryPageCache()
		calls := 0
		router := newCachedRouter(pc, &calls, http.StatusOK)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/farms", nil))
		assert.Empty(t, w.Header().Get(CacheStatusHeader))
		assert.Zero(t, pc.Len())
	})

	t.Run("non json bodies", func(t *testing.T) {
		pc := cache.NewMemoryPageCache()
		calls := 0
		router := newCachedRouter(pc, &calls, http.StatusOK)

		get(router, "/api/v1/invoices/1/pdf")
		get(router, "/api/v1/invoices/1/pdf")
		assert.Equal(t, 2, calls)
		assert.Zero(t, pc.Len())
	})
}

func TestPageCache_BackendFailureIsTransparent(t *testing.T) {
	calls := 0
	router := newCachedRouter(failingPageCache{}, &calls, http.StatusOK)

	w := get(router, "/api/v1/farms")
	assert.Equal(t, http.StatusOK, w.Code)
	w = get(router, "/api/v1/farms")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, calls)
}

func TestPageCache_NilCache(t *testing.T) {
	calls := 0
	router := newCachedRouter(nil, &calls, http.StatusOK)

	w := get(router, "/api/v1/farms")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(CacheStatusHeader))
}
