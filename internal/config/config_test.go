package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Another0Noob/recipe-browser/internal/recipeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RECIPES_BASE_URL", "RECIPES_TOKEN", "RECIPES_RATE_LIMIT", "RECIPES_LOG_LEVEL", "RECIPES_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, recipeapi.DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.RateLimit, "requests are not paced unless configured")
	assert.Empty(t, cfg.Token)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[service]
base_url = https://recipes.example
rate_limit = 0
timeout = 15s

[session]
token = abc123

[input]
file = list.csv

[log]
level = debug
format = json
file = /tmp/r.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://recipes.example", cfg.BaseURL)
	assert.Equal(t, 0, cfg.RateLimit)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "abc123", cfg.Token)
	assert.Equal(t, "list.csv", cfg.InputFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/r.log", cfg.Log.Output)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[session]\ntoken = from-file\n")
	t.Setenv("RECIPES_TOKEN", "from-env")
	t.Setenv("RECIPES_BASE_URL", "http://env.example")
	t.Setenv("RECIPES_RATE_LIMIT", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "http://env.example", cfg.BaseURL)
	assert.Equal(t, 3, cfg.RateLimit)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorContains(t, err, "load config")

	t.Setenv("RECIPES_RATE_LIMIT", "fast")
	_, err = Load("")
	assert.ErrorContains(t, err, "RECIPES_RATE_LIMIT")
}
