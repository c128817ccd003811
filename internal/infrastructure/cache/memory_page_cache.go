package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type pageEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryPageCache is a process-local PageCache
type MemoryPageCache struct {
	mu      sync.RWMutex
	entries map[string]pageEntry
	now     func() time.Time
}

// NewMemoryPageCache creates an empty MemoryPageCache
func NewMemoryPageCache() *MemoryPageCache {
	return &MemoryPageCache{
		entries: make(map[string]pageEntry),
		now:     time.Now,
	}
}

// Get returns a live entry
func (c *MemoryPageCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.body, true, nil
}

// Set stores body for ttl; a zero ttl never expires
func (c *MemoryPageCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	e := pageEntry{body: append([]byte(nil), body...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// InvalidatePrefix drops every page under prefix
func (c *MemoryPageCache) InvalidatePrefix(_ context.Context, prefix string) error {
	p := prefixKey(prefix)
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, p) {
			delete(c.entries, k)
		}
	}
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryPageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
