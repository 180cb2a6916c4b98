package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Boring, ".git")
	assert.Contains(t, cfg.Boring, "node_modules")
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dux.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boring:\n  - .git\n  - target\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{".git", "target"}, cfg.Boring)
}

func TestLoad_EmptyFileCollapsesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dux.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.NotNil(t, cfg.Boring)
	assert.Empty(t, cfg.Boring)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dux.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boring: [unclosed"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorContains(t, err, "parsing config YAML")
}
