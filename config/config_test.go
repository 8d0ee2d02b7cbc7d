package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should be written")
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Storage.Driver = "redis"
	cfg.Game.TimeoutPolicy = "forfeit"
	cfg.Game.ShuffleSeed = 42
	cfg.Server.Port = "9090"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game":{"history_limit":5}}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.HistoryLimit)
	assert.Equal(t, "medium", cfg.Game.DefaultDifficulty)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game":`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DRRM_STORAGE_DRIVER", "memory")
	t.Setenv("DRRM_REDIS_DB", "3")
	t.Setenv("DRRM_TIMEOUT_POLICY", "forfeit")
	t.Setenv("DRRM_SHUFFLE_SEED", "7")
	t.Setenv("DRRM_HISTORY_LIMIT", "not-a-number")
	t.Setenv("DRRM_PORT", "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 3, cfg.Storage.RedisDB)
	assert.Equal(t, "forfeit", cfg.Game.TimeoutPolicy)
	assert.Equal(t, int64(7), cfg.Game.ShuffleSeed)
	assert.Equal(t, 10, cfg.Game.HistoryLimit)
	assert.Equal(t, "8080", cfg.Server.Port)
}
