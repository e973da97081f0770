package ecs_test

import (
	"errors"
	"testing"

	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFactory struct {
	spawned int
}

func (f *testFactory) Spawners() map[string]ecs.SpawnFunc {
	return map[string]ecs.SpawnFunc{
		"enemy": func(d *ecs.SpawnData) (*ecs.Entity, error) {
			f.spawned++
			hp, _ := d.Int("hp")
			return ecs.NewBuilder(d).
				Type(Enemy).
				BBox(ecs.Box(40, 40)).
				With(&Health{Current: hp, Max: hp}).
				Build()
		},
		"bullet, projectile": func(d *ecs.SpawnData) (*ecs.Entity, error) {
			return ecs.NewBuilder(d).With(&Velocity{DX: 100}).Build()
		},
		"broken": func(*ecs.SpawnData) (*ecs.Entity, error) {
			return nil, errors.New("out of ammo")
		},
		"empty": func(*ecs.SpawnData) (*ecs.Entity, error) {
			return nil, nil
		},
	}
}

func TestSpawn(t *testing.T) {
	w := ecs.NewGameWorld()

	t.Run("without factory", func(t *testing.T) {
		_, err := w.SpawnAt("enemy", 0, 0)
		assert.ErrorIs(t, err, ecs.ErrNoFactory)
	})

	f := &testFactory{}
	require.NoError(t, w.AddEntityFactory(f))
	assert.Equal(t, []string{"broken", "bullet", "empty", "enemy", "projectile"}, w.SpawnNames())

	t.Run("spawn at position", func(t *testing.T) {
		e, err := w.Spawn("enemy", ecs.NewSpawnData(33, 40).Put("hp", 7))
		require.NoError(t, err)

		assert.Equal(t, geom.Pt(33, 40), e.Position())
		assert.True(t, e.IsType(Enemy))
		assert.True(t, e.IsActive())
		assert.Equal(t, 40.0, e.BoundingBox().Width())

		hp, _ := ecs.Get[*Health](e)
		assert.Equal(t, 7, hp.Current)

		v, _ := e.Properties().Int("hp")
		assert.Equal(t, 7, v, "spawn properties are copied to the entity")
	})

	t.Run("aliases share a spawn function", func(t *testing.T) {
		a, err := w.SpawnAt("bullet", 1, 1)
		require.NoError(t, err)
		b, err := w.SpawnAt("projectile", 2, 2)
		require.NoError(t, err)

		assert.True(t, ecs.Has[*Velocity](a))
		assert.True(t, ecs.Has[*Velocity](b))
	})

	t.Run("type defaults to the spawn name", func(t *testing.T) {
		e, err := w.SpawnAt("bullet", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "bullet", e.Type())

		e, err = w.Spawn("projectile", ecs.NewSpawnData(0, 0).Put("type", "rocket"))
		require.NoError(t, err)
		assert.Equal(t, "rocket", e.Type())
	})

	t.Run("create does not add", func(t *testing.T) {
		before := w.EntityCount()
		e, err := w.Create("enemy", nil)
		require.NoError(t, err)
		assert.Equal(t, ecs.Detached, e.State())
		assert.Equal(t, before, w.EntityCount())
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := w.SpawnAt("boss", 0, 0)
		assert.ErrorIs(t, err, ecs.ErrUnknownSpawn)
	})

	t.Run("spawn function errors are wrapped", func(t *testing.T) {
		_, err := w.SpawnAt("broken", 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of ammo")

		_, err = w.SpawnAt("empty", 0, 0)
		assert.Error(t, err)
	})

	t.Run("duplicate names are rejected atomically", func(t *testing.T) {
		err := w.AddEntityFactory(ecs.SpawnMap{
			"wall":  func(d *ecs.SpawnData) (*ecs.Entity, error) { return ecs.NewBuilder(d).Build() },
			"enemy": func(d *ecs.SpawnData) (*ecs.Entity, error) { return ecs.NewBuilder(d).Build() },
		})
		assert.ErrorIs(t, err, ecs.ErrDuplicateSpawn)
		assert.NotContains(t, w.SpawnNames(), "wall")
	})

	t.Run("remove factory", func(t *testing.T) {
		w.RemoveEntityFactory(f)
		assert.Empty(t, w.SpawnNames())

		_, err := w.SpawnAt("enemy", 0, 0)
		assert.ErrorIs(t, err, ecs.ErrNoFactory)
	})
}

func TestSpawnMapRemoval(t *testing.T) {
	w := ecs.NewGameWorld()
	walls := ecs.SpawnMap{"wall": func(d *ecs.SpawnData) (*ecs.Entity, error) { return ecs.NewBuilder(d).Type(Wall).Build() }}
	props := ecs.SpawnMap{"crate": func(d *ecs.SpawnData) (*ecs.Entity, error) { return ecs.NewBuilder(d).Build() }}
	require.NoError(t, w.AddEntityFactory(walls))
	require.NoError(t, w.AddEntityFactory(props))

	w.RemoveEntityFactory(walls)
	assert.Equal(t, []string{"crate"}, w.SpawnNames())
	assert.Equal(t, 1, w.Stats().FactoryCount)
}

func TestBuilder(t *testing.T) {
	w := ecs.NewGameWorld()

	e, err := ecs.Build().
		At(10, 20).
		Type(Player).
		Rotate(90).
		Scale(2, 2).
		BBox(ecs.Circle(8)).
		View("sprite").
		ZIndex(3).
		Property("lives", 3).
		WithID("player", 1).
		Irremovable().
		BuildAndAttach(w)
	require.NoError(t, err)

	assert.Equal(t, geom.Pt(10, 20), e.Position())
	assert.Equal(t, 90.0, e.Transform().Angle())
	assert.Equal(t, 2.0, e.Transform().ScaleX())
	assert.Equal(t, 16.0, e.BoundingBox().Width())
	assert.Equal(t, "sprite", e.View().Node)
	assert.Equal(t, 3, e.View().ZIndex())
	assert.True(t, ecs.Has[*ecs.IrremovableComponent](e))

	found, ok := w.EntityByID("player", 1)
	require.True(t, ok)
	assert.Same(t, e, found)

	t.Run("first error wins", func(t *testing.T) {
		_, err := ecs.Build().
			With(&Steering{}).
			With(&Velocity{}).
			Build()
		assert.ErrorIs(t, err, ecs.ErrMissingRequired)
	})
}
