// Package cache stores rendered GET responses and drops them when the
// data behind a page changes.
package cache

import (
	"context"
	"strings"
	"time"
)

// KeyPrefix namespaces every page entry
const KeyPrefix = "page:"

// PageCache stores response bodies by page key
type PageCache interface {
	// Get returns the cached body and whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// InvalidatePrefix drops every page whose path starts with prefix
	InvalidatePrefix(ctx context.Context, prefix string) error
}

// PageKey builds the cache key of a page from its path and raw query
func PageKey(path, rawQuery string) string {
	if rawQuery == "" {
		return KeyPrefix + path
	}
	return KeyPrefix + path + "?" + rawQuery
}

// prefixKey builds the key prefix shared by all pages under path
func prefixKey(path string) string {
	return KeyPrefix + strings.TrimRight(path, "/")
}
