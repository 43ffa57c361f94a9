package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: "9090"
storage:
  driver: postgres
redis:
  tree-ttl: 5m
`), 0o644))

	require.NoError(t, Load(path))

	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	assert.Equal(t, "9090", viper.GetString("app.port"))

	storage := Storage()
	assert.Equal(t, DriverPostgres, storage.Driver)
	assert.Equal(t, "db.internal", storage.Postgres.Host)
	assert.Equal(t, "social.db", storage.SQLite.Path)

	redis := Redis()
	assert.Equal(t, "localhost:6379", redis.Addr)
	assert.Equal(t, 5*time.Minute, redis.TreeTTL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
