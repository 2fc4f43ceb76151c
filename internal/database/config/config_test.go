package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		User:     "pokewiki",
		Password: "hunter2",
		DBName:   "pokewiki",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)

	assert.Equal(t,
		"host=db.internal user=pokewiki password=hunter2 dbname=pokewiki port=5432 sslmode=disable TimeZone=UTC",
		dsn)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "pg.example")
	t.Setenv("DB_NAME", "pokewiki_test")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, "pg.example", cfg.Host)
	assert.Equal(t, "pokewiki_test", cfg.DBName)
	assert.Equal(t, "5432", cfg.Port)
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Password: "hunter2"}

	t.Run("password is masked", func(t *testing.T) {
		err := SanitizeError(errors.New("auth failed for password=hunter2"), cfg)

		require.Error(t, err)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "***")
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "2")
	t.Setenv("DB_RETRY_INITIAL_DELAY", "100ms")

	cfg := LoadRetryConfigFromEnv()

	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, "100ms", cfg.InitialDelay.String())
	assert.NotEmpty(t, cfg.RetryableErrors)
}
