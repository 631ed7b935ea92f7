package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	data := []byte(`log_file = "tasks.log"

[keys]
add = "n"
delete = "x"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "tasks.log", cfg.LogFile)
	assert.Equal(t, "n", cfg.Keys.Add)
	assert.Equal(t, "x", cfg.Keys.Delete)
	assert.Equal(t, "e", cfg.Keys.Edit)
	assert.Equal(t, "ctrl+s", cfg.Keys.Save)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("keys = ["), 0o644))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}

func TestResolveConfigPathPrefersEnv(t *testing.T) {
	t.Setenv(ConfigPathEnv, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", ResolveConfigPath())

	t.Setenv(ConfigPathEnv, "")
	assert.Equal(t, DefaultConfigFileName, filepath.Base(ResolveConfigPath()))
}
