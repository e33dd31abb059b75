package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcinkh/asyncorm/config"
	"github.com/pcinkh/asyncorm/dialect"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asyncorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
database:
  dialect: sqlite
  dsn: ":memory:"
models:
  - library
  - authors
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dialect.SQLite, s.Database.Dialect)
	assert.Equal(t, ":memory:", s.Database.DSN)
	assert.Equal(t, []string{"library", "authors"}, s.Models)
}

func TestLoadDefaultDialect(t *testing.T) {
	t.Parallel()
	path := writeFile(t, `
database:
  dsn: "postgres://localhost/library"
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dialect.Postgres, s.Database.Dialect)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading")
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "database: [broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing")
	})
	t.Run("UnknownDialect", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "database:\n  dialect: oracle\n  dsn: x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown dialect "oracle"`)
	})
	t.Run("MissingDSN", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "database:\n  dialect: postgres"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dsn is required")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	s := config.Default()
	s.Database.DSN = "postgres://localhost/library"
	assert.NoError(t, s.Validate())
}
