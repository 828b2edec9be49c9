package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, doc map[string]any) string {
	t.Helper()
	raw, err := yaml.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.GetAddr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "ticketdesk", cfg.Database.Database)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  allowed_origins: ["http://localhost:3000"]
database:
  driver: sqlite
  path: /tmp/desk.db
logger:
  level: debug
`), 0o600))

	t.Setenv("TICKETDESK_LOGGER_LEVEL", "warn")
	t.Setenv("TICKETDESK_AUTH_PASSWORD_BCRYPT_COST", "4")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Database.IsSQLite())
	assert.Equal(t, "/tmp/desk.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, 4, cfg.Auth.Password.BcryptCost)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	t.Chdir(t.TempDir())
	t.Setenv("TICKETDESK_DATABASE_DRIVER", "postgres")
	_, err = Load("", "")
	assert.ErrorContains(t, err, `unsupported database driver "postgres"`)
}

func TestLoad_RateLimit(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"redis": map[string]any{"host": "cache", "port": 6380, "db": 2},
		"ratelimit": map[string]any{
			"enabled":        true,
			"requests":       20,
			"window_seconds": 10,
		},
	})

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "cache:6380", cfg.Redis.GetAddr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20, cfg.RateLimit.Requests)
	assert.Equal(t, 10, cfg.RateLimit.WindowSeconds)

	path = writeConfig(t, map[string]any{
		"ratelimit": map[string]any{"enabled": true, "requests": 0},
	})
	_, err = Load("", path)
	assert.ErrorContains(t, err, "ratelimit.requests")
}
