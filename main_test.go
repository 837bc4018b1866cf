package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flickr-search/internal/config"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, config.DefaultConfigFile, configFlag.DefValue)

	levelFlag := cmd.Flags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "", levelFlag.DefValue)

	assert.Equal(t, "flickr-search", cmd.Use)
	assert.Equal(t, version, cmd.Version)
}

func TestRootOptions_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flickr-search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\nflickr:\n  per_page: 30\n"), 0o644))

	cfg, _, err := (&rootOptions{configPath: path}).load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Flickr.PerPage)

	cfg, _, err = (&rootOptions{configPath: path, logLevel: "debug"}).load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRootOptions_LoadMissingFile(t *testing.T) {
	cfg, _, err := (&rootOptions{configPath: filepath.Join(t.TempDir(), "absent.yaml")}).load()
	require.NoError(t, err)
	assert.Equal(t, config.Default().Flickr.PerPage, cfg.Flickr.PerPage)
}

func TestRootOptions_LoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flickr: [unclosed"), 0o644))

	_, _, err := (&rootOptions{configPath: path}).load()
	assert.Error(t, err)
}
