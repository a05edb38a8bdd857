package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
}

func TestSetup(t *testing.T) {
	t.Run("applies settings", func(t *testing.T) {
		db := setupTestDB(t)

		err := Setup(db, DefaultConfig())
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("zero max open conns", func(t *testing.T) {
		db := setupTestDB(t)

		cfg := DefaultConfig()
		cfg.MaxOpenConns = 0

		err := Setup(db, cfg)
		assert.Error(t, err)
	})

	t.Run("negative max idle conns", func(t *testing.T) {
		db := setupTestDB(t)

		cfg := DefaultConfig()
		cfg.MaxIdleConns = -1

		err := Setup(db, cfg)
		assert.Error(t, err)
	})

	t.Run("idle greater than open", func(t *testing.T) {
		db := setupTestDB(t)

		cfg := DefaultConfig()
		cfg.MaxOpenConns = 5
		cfg.MaxIdleConns = 10

		err := Setup(db, cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds MaxOpenConns")
	})
}
