package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("API_BASE_URL", "http://localhost:8080")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, "storefront", cfg.DBConfig.DBName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DBConfig.URI)
	assert.Equal(t, "filesystem", cfg.Media.Storage)
	assert.Equal(t, int64(1440), cfg.Auth.TokenTTL)
	assert.Equal(t, "memory", cfg.Sessions.Store)
	assert.Equal(t, "storefront-events", cfg.BrokerConfig.StreamName)
	assert.Equal(t, int64(10000), cfg.BrokerConfig.MaxLen)
	assert.Equal(t, []string{"console", "file"}, cfg.Logger.Targets)

	require.NoError(t, cfg.CheckAPI())
	assert.ErrorContains(t, cfg.CheckBot(), "BOT_TOKEN")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("./missing.yml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("environment: prod\nmedia:\n  storage: tape\n"), 0o600))

	_, err = Load(bad)
	assert.ErrorContains(t, err, "media.storage")
}

func TestCheckBot(t *testing.T) {
	cfg := &Config{}
	cfg.Bot.Token = "123:abc"
	assert.ErrorContains(t, cfg.CheckBot(), "API_BASE_URL")

	cfg.APIClient.BaseURL = "http://api"
	assert.NoError(t, cfg.CheckBot())
}
