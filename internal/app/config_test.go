package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_TOKEN", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, 15*time.Second, cfg.AppReadTimeout)
	assert.Equal(t, 60, cfg.AppRateLimit)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, AuthStatic, cfg.AuthMode)
	assert.Equal(t, "employees", cfg.RedisPrefix)
	assert.True(t, cfg.SeedOnStart)
	assert.True(t, cfg.PGMigrate)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUTH_MODE=jwt\nAUTH_JWT_SECRET=from-file\n"), 0o600))
	t.Setenv("AUTH_MODE", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	os.Unsetenv("AUTH_MODE")
	os.Unsetenv("AUTH_JWT_SECRET")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, AuthJWT, cfg.AuthMode)
	assert.Equal(t, "from-file", cfg.AuthJWTSecret)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Chdir(t.TempDir())
	cases := map[string]map[string]string{
		"static token":   {"AUTH_MODE": AuthStatic, "AUTH_TOKEN": ""},
		"bcrypt hash":    {"AUTH_MODE": AuthBcrypt, "AUTH_TOKEN_HASH": ""},
		"jwt secret":     {"AUTH_MODE": AuthJWT, "AUTH_JWT_SECRET": ""},
		"unknown mode":   {"AUTH_MODE": "ldap", "AUTH_TOKEN": "x"},
		"unknown driver": {"AUTH_MODE": AuthNone, "STORE_DRIVER": "mongo"},
		"none in prod":   {"AUTH_MODE": AuthNone, "APP_ENV": "production"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "INFO", parseLevel("info").String())
	assert.Equal(t, "WARN", parseLevel(" Warning ").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "DEBUG", parseLevel("verbose").String())
}
