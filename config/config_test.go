package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "users", cfg.Mongo.UserCollection)
	assert.Equal(t, 5*time.Minute, cfg.News.CacheTTL)
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 8080
mongo:
  database: otherdb
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Environment wins over the file, the file wins over defaults.
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "otherdb", cfg.Mongo.Database)
	assert.Equal(t, "users", cfg.Mongo.UserCollection)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
