package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella2211/tanstack-start-todo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// 存在しないパスを指定してもデフォルト設定が返る
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "todos.db", cfg.Database.Path, "Expected the fixed local path as default storage location")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
server:
  port: 9090
  allow_origins:
    - http://example.com
database:
  driver: sqlite3
  path: /tmp/other.db
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://example.com"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "todos")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "Expected env var to win over the file")
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "app:secret@tcp(db:3306)/todos?parseTime=true", cfg.Database.DSN())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDSN_SQLite(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "file:todos.db?_journal_mode=WAL&_busy_timeout=5000", cfg.Database.DSN())
}
