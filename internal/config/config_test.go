package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/gameworld/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gameworld.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, `
[logging]
level = "debug"

[world]
tick_rate = 30
seed = 42

[stress]
entities = 500
duration = "2s"
`))
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.Equal(t, 30.0, cfg.World.TickRate)
		assert.Equal(t, uint64(42), cfg.World.Seed)
		assert.Equal(t, 1.0, cfg.World.TimeScale)
		assert.Equal(t, 500, cfg.Stress.Entities)
		assert.Equal(t, 2*time.Second, cfg.Stress.Duration)
		assert.Equal(t, 1000, cfg.Stress.PoolSize)
		assert.Equal(t, 1280, cfg.Sandbox.Width)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "[world\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "[world]\ntick_rate = 0\n[stress]\nquery_every = 0\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tick_rate")
		assert.Contains(t, err.Error(), "query_every")
	})
}

func TestFrameTime(t *testing.T) {
	w := config.WorldConfig{TickRate: 50}
	assert.Equal(t, 0.02, w.FrameTime())
	assert.Equal(t, 20*time.Millisecond, w.Interval())
}

func TestNewLogger(t *testing.T) {
	log, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = config.NewLogger(config.LoggingConfig{Level: "bogus"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
