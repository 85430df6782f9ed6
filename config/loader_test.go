package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "activities", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "web/static", cfg.Server.StaticDir)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "none", cfg.Events.Publisher)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	require.NoError(t, validate(cfg))
}

func TestValidateRejectsBadBackends(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	cfg.Store.Backend = "redis"
	assert.Error(t, validate(cfg), "redis backend without address must fail")

	cfg.Store.Redis.Address = "localhost:6379"
	assert.NoError(t, validate(cfg))

	cfg.Store.Backend = "postgres"
	assert.Error(t, validate(cfg))

	cfg.Store.Backend = "memory"
	cfg.Events.Publisher = "sqs"
	assert.Error(t, validate(cfg), "sqs publisher without queue_url must fail")

	cfg.Events.SQS.QueueURL = "https://sqs.us-east-1.amazonaws.com/1/rosters"
	assert.NoError(t, validate(cfg))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte(`
app:
  name: activities-test
server:
  port: 9090
store:
  backend: redis
  redis:
    address: localhost:6379
events:
  publisher: memory
logging:
  level: debug
  format: console
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "activities-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Address)
	assert.Equal(t, "activities", cfg.Store.Redis.Prefix, "prefix default applies")
	assert.Equal(t, "memory", cfg.Events.Publisher)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
