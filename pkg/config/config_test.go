package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, "calendar", c.Lunar.Provider)
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, c.Cache.TTL)
	assert.False(t, c.Kafka.Enabled)
	assert.Equal(t, -1, c.Kafka.RequiredAcks)
	assert.Equal(t, "charts", c.ClickHouse.Table)
	assert.True(t, c.Server.CORS.Enabled)
	assert.Equal(t, []string{"*"}, c.Server.CORS.AllowOrigins)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
lunar:
  provider: identity
cache:
  enabled: false
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "identity", c.Lunar.Provider)
	assert.False(t, c.Cache.Enabled)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoadWithEnv(t *testing.T) {
	path := writeConfig(t, "environment: staging\n")
	t.Setenv("SUANMING_PORT", "7070")
	t.Setenv("SUANMING_KAFKA_ENABLED", "true")
	t.Setenv("SUANMING_KAFKA_BROKERS", "k1:9092,k2:9092")

	c, err := LoadWithEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.True(t, c.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"unknown provider": "lunar:\n  provider: moon\n",
		"http without url": "lunar:\n  provider: http\n",
		"bad log level":    "log:\n  level: loud\n",
		"kafka no brokers": "kafka:\n  enabled: true\n  brokers: []\n",
		"bad port":         "server:\n  port: 70000\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
