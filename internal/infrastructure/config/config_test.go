package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "kdirani-farms", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "farms", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "memory", cfg.Storage.Type)
		assert.Equal(t, int64(25<<20), cfg.Storage.MaxFileSize)
		assert.Equal(t, "memory", cfg.Cache.Type)
		assert.True(t, cfg.Cache.Enabled)
		assert.Equal(t, 5*time.Minute, cfg.Cache.PageTTL)
		assert.Equal(t, "user_role", cfg.JWT.RoleClaim)
		assert.False(t, cfg.Swagger.Enabled)
		assert.False(t, cfg.Telemetry.Enabled)
	})

	t.Run("loads values from environment variables with FARM prefix", func(t *testing.T) {
		t.Setenv("FARM_APP_PORT", "9000")
		t.Setenv("FARM_DATABASE_DRIVER", "sqlite")
		t.Setenv("FARM_DATABASE_SQLITE_PATH", "/tmp/test.db")
		t.Setenv("FARM_STORAGE_TYPE", "s3")
		t.Setenv("FARM_STORAGE_BUCKET", "eggs")
		t.Setenv("FARM_CACHE_TYPE", "redis")
		t.Setenv("FARM_CACHE_ENABLED", "false")
		t.Setenv("FARM_REDIS_PORT", "6380")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
		assert.Equal(t, "s3", cfg.Storage.Type)
		assert.Equal(t, "eggs", cfg.Storage.Bucket)
		assert.Equal(t, "redis", cfg.Cache.Type)
		assert.False(t, cfg.Cache.Enabled)
		assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("FARM_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("FARM_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown storage type", func(t *testing.T) {
		t.Setenv("FARM_STORAGE_TYPE", "ftp")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.type")
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		t.Setenv("FARM_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("production requires a long jwt secret", func(t *testing.T) {
		t.Setenv("FARM_APP_ENV", "production")
		t.Setenv("FARM_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects in-memory storage", func(t *testing.T) {
		t.Setenv("FARM_APP_ENV", "production")
		t.Setenv("FARM_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		t.Setenv("FARM_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.type")
	})

	t.Run("validates sampling ratio range", func(t *testing.T) {
		t.Setenv("FARM_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("loads logs metrics and profiling settings", func(t *testing.T) {
		t.Setenv("FARM_TELEMETRY_ENABLED", "true")
		t.Setenv("FARM_TELEMETRY_LOGS_ENABLED", "true")
		t.Setenv("FARM_TELEMETRY_METRICS_ENABLED", "true")
		t.Setenv("FARM_TELEMETRY_PROFILING_ENABLED", "true")
		t.Setenv("FARM_TELEMETRY_PROFILING_SERVER_ADDRESS", "http://pyroscope:4040")
		t.Setenv("FARM_TELEMETRY_PROFILING_PROFILE_TYPES", "cpu inuse_space")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Telemetry.LogsEnabled)
		assert.True(t, cfg.Telemetry.MetricsEnabled)
		assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsInterval)
		assert.True(t, cfg.Telemetry.Profiling.Enabled)
		assert.Equal(t, "http://pyroscope:4040", cfg.Telemetry.Profiling.ServerAddress)
		assert.Equal(t, []string{"cpu", "inuse_space"}, cfg.Telemetry.Profiling.ProfileTypes)
	})

	t.Run("profiling requires a server address", func(t *testing.T) {
		t.Setenv("FARM_TELEMETRY_PROFILING_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profiling.server_address")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "farm",
		Password: "p@ss word",
		DBName:   "farms",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://farm:p%40ss%20word@db:5432/farms?sslmode=disable", d.DSN())
}
