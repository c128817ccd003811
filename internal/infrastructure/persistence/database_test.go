package persistence

import (
	"path/filepath"
	"testing"

	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "farms.db"),
	}

	db, err := NewDatabase(cfg, nil)
	require.NoError(t, err)

	t.Run("single writer connection", func(t *testing.T) {
		sqlDB, err := db.DB.DB()
		require.NoError(t, err)
		assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, db.Ping())
	})

	t.Run("auto migrate creates farm tables", func(t *testing.T) {
		require.NoError(t, AutoMigrate(db.DB))
		assert.True(t, db.DB.Migrator().HasTable("farms"))
		assert.True(t, db.DB.Migrator().HasTable("invoices"))
	})

	t.Run("close", func(t *testing.T) {
		require.NoError(t, db.Close())
		assert.Error(t, db.Ping())
	})
}
