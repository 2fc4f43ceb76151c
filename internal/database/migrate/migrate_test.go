package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, "migrations", Path())
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "/srv/migrations")
		assert.Equal(t, "/srv/migrations", Path())
	})
}

func TestUp(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		assert.Error(t, Up(nil))
	})
}
