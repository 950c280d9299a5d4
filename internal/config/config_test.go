package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 20, cfg.Server.ChatRateLimit)
	assert.Equal(t, time.Minute, cfg.Server.ChatRateWindow)
	assert.Equal(t, "UNN 5.0", cfg.BandTable().Name())
}

func TestLoadFileWithScale(t *testing.T) {
	path := writeFile(t, "gradex.yaml", `
log:
  level: debug
server:
  addr: 127.0.0.1:9000
  chat_rate_window: 30s
grading:
  scale:
    name: Pass/Fail
    bands:
      - {min: 50, max: 100, letter: P, points: 1}
      - {min: 0, max: 49, letter: F, points: 0}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ChatRateWindow)

	table := cfg.BandTable()
	assert.Equal(t, "Pass/Fail", table.Name())
	require.Len(t, table.Bands(), 2)
	assert.Equal(t, "P", table.Highest().Letter)
}

func TestLoadRejectsBadScale(t *testing.T) {
	path := writeFile(t, "gradex.yaml", `
grading:
  scale:
    bands:
      - {min: 60, max: 100, letter: A, points: 5}
      - {min: 0, max: 49, letter: F, points: 0}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grading.scale")
	assert.Contains(t, err.Error(), "not covered")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gradex.yaml", "log:\n  level: debug\n")
	t.Setenv("GRADEX_LOG_LEVEL", "error")
	t.Setenv("GRADEX_LLM_PROVIDER", "none")
	t.Setenv("GRADEX_SERVER_CHAT_RATE_LIMIT", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "none", cfg.LLM.Provider)
	assert.Equal(t, 5, cfg.Server.ChatRateLimit)
}

func TestConfigDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gradex"), dir)
}
