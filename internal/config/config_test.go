package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultLatency, cfg.Latency)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Auth.Enabled())
}

func TestNew_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `server_url: http://localhost:8080/
latency: 250ms
timeout: 3s
auth:
  client_id: cli
  client_secret: s3cret
  token_url: http://localhost:8080/oauth/token
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, "cli", cfg.Auth.ClientID)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server_url: http://file\n"), 0600))
	t.Setenv("TODOREMOTE_SERVER_URL", "http://env")

	cfg, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.ServerURL)
}

func TestNew_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server_url: [unclosed\n"), 0600))

	_, err := New(dir)
	assert.Error(t, err)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestToken(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	assert.False(t, cfg.HasToken())

	require.NoError(t, os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600))
	assert.True(t, cfg.HasToken())

	require.NoError(t, cfg.RemoveToken())
	assert.False(t, cfg.HasToken())
}
