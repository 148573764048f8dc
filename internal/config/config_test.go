package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SESSION_STORE", "")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.EnforceRequestReceiver)
	assert.False(t, cfg.AdminEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("SESSION_STORE", "cookie")
	t.Setenv("ENFORCE_REQUEST_RECEIVER", "true")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "cookie", cfg.SessionStore)
	assert.True(t, cfg.EnforceRequestReceiver)
	assert.True(t, cfg.AdminEnabled())
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collabhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME: research\nLOG_FORMAT: json\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()

	assert.Equal(t, "research", cfg.DBName)
	assert.Equal(t, "json", cfg.LogFormat)
}
