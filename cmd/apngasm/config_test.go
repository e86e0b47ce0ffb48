package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: /frames\nkeep_palette: true\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/frames", cfg.InputDir)
	assert.True(t, cfg.KeepPalette)
	// Unset keys keep their defaults.
	assert.Equal(t, "output.apng", cfg.Output)
	assert.Equal(t, 24, cfg.FPS)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := loadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fps: [1, 2"), 0o600))
	_, err = loadConfig(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with input", func(c *Config) {}, false},
		{"fps 1", func(c *Config) { c.FPS = 1 }, false},
		{"fps 120", func(c *Config) { c.FPS = 120 }, false},
		{"fps 0", func(c *Config) { c.FPS = 0 }, true},
		{"fps 121", func(c *Config) { c.FPS = 121 }, true},
		{"no input", func(c *Config) { c.InputDir = "" }, true},
		{"no output", func(c *Config) { c.Output = "" }, true},
		{"quiet and verbose", func(c *Config) { c.Quiet, c.Verbose = true, true }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.InputDir = "frames"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid configuration")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
