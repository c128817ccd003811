package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageKey(t *testing.T) {
	assert.Equal(t, "page:/invoices", PageKey("/invoices", ""))
	assert.Equal(t, "page:/invoices?type=buy", PageKey("/invoices", "type=buy"))
}

func TestMemoryPageCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryPageCache()

	_, ok, err := c.Get(ctx, "page:/farms")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "page:/farms", []byte(`{"success":true}`), time.Minute))
	body, ok, err := c.Get(ctx, "page:/farms")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestMemoryPageCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryPageCache()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "page:/materials", []byte("x"), time.Minute))
	now = now.Add(2 * time.Minute)

	_, ok, err := c.Get(ctx, "page:/materials")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryPageCache_InvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryPageCache()
	for _, k := range []string{
		PageKey("/invoices", ""),
		PageKey("/invoices", "type=sell"),
		PageKey("/invoices/6a1f", ""),
		PageKey("/daily-reports", ""),
	} {
		require.NoError(t, c.Set(ctx, k, []byte("x"), 0))
	}

	require.NoError(t, c.InvalidatePrefix(ctx, "/invoices"))

	assert.Equal(t, 1, c.Len())
	_, ok, _ := c.Get(ctx, PageKey("/daily-reports", ""))
	assert.True(t, ok)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `page:/a\*b\?\[c\]`, escapeGlob("page:/a*b?[c]"))
}
