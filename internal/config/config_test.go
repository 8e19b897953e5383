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
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "netsentry.log", cfg.LogFile)
	assert.Equal(t, "NetSentry Network Activity", cfg.LogTag)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.False(t, cfg.Headless)
	assert.Empty(t, cfg.MetricsAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netsentry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_file: /var/log/netsentry.log
interval: 2s
headless: true
metrics_addr: ":9100"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/netsentry.log", cfg.LogFile)
	assert.Equal(t, "NetSentry Network Activity", cfg.LogTag, "unset keys keep defaults")
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.True(t, cfg.Headless)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Interval = 0
	cfg.LogFile = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval")
	assert.Contains(t, err.Error(), "log_file")
}
