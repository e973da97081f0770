package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSandbox(t *testing.T) *sandbox {
	t.Helper()
	cfg := config.Default()
	cfg.World.Seed = 1
	sb, err := newSandbox(cfg, zap.NewNop())
	require.NoError(t, err)
	return sb
}

func holding(keys ...ebiten.Key) KeyState {
	return func(k ebiten.Key) bool {
		for _, held := range keys {
			if k == held {
				return true
			}
		}
		return false
	}
}

func TestNewSandbox(t *testing.T) {
	sb := newTestSandbox(t)

	assert.Equal(t, "courtyard", sb.world.Level().Name)
	// nine level entities and the score
	assert.Equal(t, 10, sb.world.EntityCount())
	assert.Len(t, sb.world.EntitiesByType("coin"), 3)
	assert.Len(t, sb.world.EntitiesByType("wall"), 2)
	assert.Equal(t, 12, sb.score.Get().Goal)

	player, ok := sb.player()
	require.True(t, ok)
	assert.Equal(t, 620.0, player.X())
	assert.Equal(t, playerLayer, player.View().Layer())

	gem, err := sb.world.SingletonByType("gem")
	require.NoError(t, err)
	pickup, ok := ecs.Lookup[*Pickup](gem)
	require.True(t, ok)
	assert.Equal(t, 7, pickup.Value)

	wall := sb.world.EntitiesByType("wall")[0]
	assert.Equal(t, 1280.0, wall.BoundingBox().Width())
}

func TestControlSystem(t *testing.T) {
	sb := newTestSandbox(t)
	player, ok := sb.player()
	require.True(t, ok)

	sb.control.Pressed = holding(ebiten.KeyD)
	sb.scheduler.Once(0.1)
	assert.InDelta(t, 644, player.X(), 1e-9)
	assert.Equal(t, 340.0, player.Y())

	t.Run("blocked by crate", func(t *testing.T) {
		_, err := sb.world.SpawnAt("crate", 670, 340)
		require.NoError(t, err)

		sb.scheduler.Once(0.1)
		assert.InDelta(t, 644, player.X(), 1e-9)
	})

	t.Run("diagonal", func(t *testing.T) {
		sb.control.Pressed = holding(ebiten.KeyArrowUp, ebiten.KeyA)
		sb.scheduler.Once(0.1)
		assert.InDelta(t, 620, player.X(), 1e-9)
		assert.InDelta(t, 316, player.Y(), 1e-9)
	})

	t.Run("paused mover", func(t *testing.T) {
		mover, ok := ecs.Lookup[*Mover](player)
		require.True(t, ok)
		mover.Pause()
		defer mover.Resume()

		sb.scheduler.Once(0.1)
		assert.InDelta(t, 620, player.X(), 1e-9)
	})
}

func TestPickupSystem(t *testing.T) {
	sb := newTestSandbox(t)
	sb.control.Pressed = holding()
	player, ok := sb.player()
	require.True(t, ok)

	player.SetPosition(195, 195)
	sb.scheduler.Once(1.0 / 60)

	score := sb.score.Get()
	assert.Equal(t, 1, score.Points)
	assert.Equal(t, 1, score.Collected)
	assert.Len(t, sb.world.EntitiesByType("coin"), 2)

	player.SetPosition(1000, 560)
	sb.scheduler.Once(1.0 / 60)
	assert.Equal(t, 8, score.Points)
	assert.Equal(t, 2, score.Collected)
	assert.Empty(t, sb.world.EntitiesByType("gem"))
}

func TestLevelFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("custom level", func(t *testing.T) {
		path := filepath.Join(dir, "small.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
name: small
width: 100
height: 100
entities:
  - spawn: player
    x: 50
    y: 50
  - spawn: gem
    x: 10
    y: 10
`), 0o644))

		cfg := config.Default()
		cfg.Sandbox.LevelFile = path
		sb, err := newSandbox(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "small", sb.world.Level().Name)
		assert.Equal(t, 3, sb.world.EntityCount())
		assert.Equal(t, 0, sb.score.Get().Goal)
	})

	t.Run("unknown spawn", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: bad\nentities:\n  - spawn: dragon\n"), 0o644))

		cfg := config.Default()
		cfg.Sandbox.LevelFile = path
		_, err := newSandbox(cfg, zap.NewNop())
		assert.ErrorIs(t, err, ecs.ErrUnknownSpawn)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Sandbox.LevelFile = filepath.Join(dir, "nope.yaml")
		_, err := newSandbox(cfg, zap.NewNop())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestScoreBundle(t *testing.T) {
	b := ecs.NewBundle("score")
	(&Score{Points: 9, Collected: 4, Goal: 12}).Write(b)

	var restored Score
	restored.Read(b)
	assert.Equal(t, 9, restored.Points)
	assert.Equal(t, 4, restored.Collected)
	assert.Zero(t, restored.Goal)
}
