//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisPageCache(t *testing.T) {
	client := startRedis(t)
	c := NewRedisPageCacheWithClient(client)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	// more keys than one SCAN batch
	for i := 0; i < scanBatch+25; i++ {
		require.NoError(t, c.Set(ctx, PageKey(fmt.Sprintf("/invoices/%d", i), ""), []byte("x"), time.Minute))
	}
	require.NoError(t, c.Set(ctx, PageKey("/materials", ""), []byte("m"), time.Minute))

	body, ok, err := c.Get(ctx, PageKey("/invoices/3", ""))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", string(body))

	require.NoError(t, c.InvalidatePrefix(ctx, "/invoices"))

	_, ok, err = c.Get(ctx, PageKey("/invoices/3", ""))
	require.NoError(t, err)
	assert.False(t, ok)

	body, ok, err = c.Get(ctx, PageKey("/materials", ""))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "m", string(body))
}
