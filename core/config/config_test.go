package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "fxr-query.db", cfg.Database.Name)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "audits", cfg.Storage.Prefix)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("GAME_DIRECTORY", "/games/ELDEN RING/Game")
	t.Setenv("SCAN_WORKERS", "2")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/games/ELDEN RING/Game", cfg.Game.Directory)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OUTPUT_DIRECTORY=reports\nGAME_PROFILE=ds3\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("OUTPUT_DIRECTORY")
		os.Unsetenv("GAME_PROFILE")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "reports", cfg.Output.Directory)
	assert.Equal(t, "ds3", cfg.Game.Profile)
}
