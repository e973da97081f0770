package level_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/ecs/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arena = `
name: arena
width: 800
height: 600
properties:
  music: battle
entities:
  - spawn: player
    x: 100
    y: 300
  - spawn: enemy
    x: 600
    y: 300
    properties:
      hp: 5
`

func newWorld(t *testing.T) *ecs.GameWorld {
	t.Helper()
	w := ecs.NewGameWorld()
	require.NoError(t, w.AddEntityFactory(ecs.SpawnMap{
		"player, enemy": func(d *ecs.SpawnData) (*ecs.Entity, error) {
			return ecs.NewBuilder(d).BBox(ecs.Box(32, 32)).Build()
		},
	}))
	return w
}

func TestParse(t *testing.T) {
	w := newWorld(t)

	lvl, err := level.Parse([]byte(arena), w)
	require.NoError(t, err)

	assert.Equal(t, "arena", lvl.Name)
	assert.Equal(t, 800.0, lvl.Width)
	music, _ := lvl.Properties.Str("music")
	assert.Equal(t, "battle", music)

	require.Len(t, lvl.Entities, 2)
	player, enemy := lvl.Entities[0], lvl.Entities[1]
	assert.Equal(t, "player", player.Type())
	assert.Equal(t, 100.0, player.X())
	assert.Equal(t, ecs.Detached, player.State(), "building a level does not add entities")

	hp, ok := enemy.Properties().Int("hp")
	require.True(t, ok)
	assert.Equal(t, 5, hp)

	require.NoError(t, w.SetLevel(lvl))
	assert.Equal(t, 2, w.EntityCount())
}

func TestParseErrors(t *testing.T) {
	w := newWorld(t)

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := level.Parse([]byte("entities: [\n"), w)
		assert.Error(t, err)
	})

	t.Run("missing spawn name", func(t *testing.T) {
		_, err := level.Parse([]byte("entities:\n  - x: 1\n"), w)
		assert.ErrorIs(t, err, level.ErrInvalidLevel)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := level.Parse([]byte("width: -1\n"), w)
		assert.ErrorIs(t, err, level.ErrInvalidLevel)
	})

	t.Run("unknown spawn", func(t *testing.T) {
		_, err := level.Parse([]byte("entities:\n  - spawn: dragon\n"), w)
		assert.ErrorIs(t, err, ecs.ErrUnknownSpawn)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(arena), 0o644))

	lvl, err := level.LoadFile(path, newWorld(t))
	require.NoError(t, err)
	assert.Len(t, lvl.Entities, 2)

	_, err = level.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), newWorld(t))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	f, err := level.Decode([]byte(arena))
	require.NoError(t, err)

	out, err := level.Encode(f)
	require.NoError(t, err)

	again, err := level.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}
