package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "data/wellspring.db", cfg.DB.Path)
	assert.True(t, cfg.Sensor.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Sensor.Interval)
	assert.False(t, cfg.LLM.Enabled)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9999"
  cors_origins: ["http://localhost:5173"]
db:
  path: /tmp/test.db
sensor:
  enabled: true
  interval: 10s
log:
  level: debug
llm:
  enabled: true
  model: llama3.2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "/tmp/test.db", cfg.DB.Path)
	assert.Equal(t, 10*time.Second, cfg.Sensor.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WELLSPRING_ADDR", ":7070")
	t.Setenv("WELLSPRING_DB_PATH", "/tmp/env.db")
	t.Setenv("WELLSPRING_SENSOR_ENABLED", "false")
	t.Setenv("WELLSPRING_SENSOR_INTERVAL", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/env.db", cfg.DB.Path)
	assert.False(t, cfg.Sensor.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Sensor.Interval)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
