package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("nil db", func(t *testing.T) {
		assert.Error(t, HealthCheck(ctx, nil))
	})

	t.Run("open connection", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		assert.NoError(t, HealthCheck(ctx, db))
	})
}

func TestClose(t *testing.T) {
	t.Run("nil db is a no-op", func(t *testing.T) {
		assert.NoError(t, Close(nil))
	})

	t.Run("closes the connection", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		require.NoError(t, Close(db))
		assert.Error(t, HealthCheck(context.Background(), db))
	})
}
