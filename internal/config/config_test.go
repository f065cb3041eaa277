package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Listen)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "./data/recipebox.db", cfg.Database.Path)
	assert.Equal(t, "./data/media", cfg.Uploads.Dir)
	assert.Equal(t, int64(10<<20), cfg.Uploads.MaxBytes)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
server_url: https://recipes.example.com/
auth:
  secret: test-secret
  token_ttl: 1h
database:
  path: /var/lib/recipebox/db.sqlite
uploads:
  dir: /var/lib/recipebox/media
  max_bytes: 1048576
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	// Trailing slash is stripped
	assert.Equal(t, "https://recipes.example.com", cfg.ServerURL)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/var/lib/recipebox/db.sqlite", cfg.Database.Path)
	assert.Equal(t, "/var/lib/recipebox/media", cfg.Uploads.Dir)
	assert.Equal(t, int64(1<<20), cfg.Uploads.MaxBytes)
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth secret")
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	path := writeConfig(t, `
auth:
  secret: test-secret
  token_ttl: -1h
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token TTL")
}

func TestLoad_SecretFromEnv(t *testing.T) {
	t.Setenv("RECIPEBOX_AUTH_SECRET", "env-secret")

	path := writeConfig(t, `
listen: 127.0.0.1:9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, validateConfig(nil))
}
