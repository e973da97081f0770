package ecs_test

import (
	"testing"

	"github.com/plus3/gameworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityGroup(t *testing.T) {
	w := ecs.NewGameWorld()
	existing := newEntity(Enemy, 0, 0)
	require.NoError(t, w.AddEntity(existing))

	group := w.Group(Enemy, Bullet)
	assert.Equal(t, 1, group.Size(), "existing entities are picked up")
	assert.Equal(t, []any{Enemy, Bullet}, group.Types())

	bullet := newEntity(Bullet, 0, 0)
	player := newEntity(Player, 0, 0)
	require.NoError(t, w.AddEntities(bullet, player))

	t.Run("tracks additions", func(t *testing.T) {
		assert.Equal(t, 2, group.Size())
		assert.True(t, group.Contains(bullet))
		assert.False(t, group.Contains(player))
	})

	t.Run("tracks removals without an update", func(t *testing.T) {
		require.NoError(t, w.RemoveEntity(existing))
		assert.Equal(t, 1, group.Size())
		assert.Equal(t, []*ecs.Entity{bullet}, group.Entities())
	})

	t.Run("for each may remove members", func(t *testing.T) {
		more := []*ecs.Entity{newEntity(Enemy, 1, 0), newEntity(Enemy, 2, 0), newEntity(Enemy, 3, 0)}
		require.NoError(t, w.AddEntities(more...))

		var visited int
		group.ForEach(func(e *ecs.Entity) {
			visited++
			require.NoError(t, w.RemoveEntity(e))
		})
		assert.Equal(t, 4, visited)
		assert.Zero(t, group.Size())
	})

	t.Run("for each where", func(t *testing.T) {
		require.NoError(t, w.AddEntities(newEntity(Enemy, 1, 0), newEntity(Enemy, 50, 0)))

		var xs []float64
		group.ForEachWhere(
			func(e *ecs.Entity) bool { return e.X() > 10 },
			func(e *ecs.Entity) { xs = append(xs, e.X()) },
		)
		assert.Equal(t, []float64{50}, xs)
	})

	t.Run("dispose", func(t *testing.T) {
		group.Dispose()
		assert.True(t, group.IsDisposed())
		assert.Zero(t, group.Size())
		assert.NotContains(t, w.Groups(), group)

		require.NoError(t, w.AddEntity(newEntity(Enemy, 0, 0)))
		assert.Zero(t, group.Size())

		group.Dispose()
	})
}

func TestGroupSwapRemove(t *testing.T) {
	w := ecs.NewGameWorld()
	group := w.Group(Enemy)

	a, b, c := newEntity(Enemy, 0, 0), newEntity(Enemy, 1, 0), newEntity(Enemy, 2, 0)
	require.NoError(t, w.AddEntities(a, b, c))

	require.NoError(t, w.RemoveEntity(a))
	assert.ElementsMatch(t, []*ecs.Entity{b, c}, group.Entities())

	require.NoError(t, w.RemoveEntity(c))
	assert.Equal(t, []*ecs.Entity{b}, group.Entities())
	assert.True(t, group.Contains(b))
	assert.False(t, group.Contains(c))
}

func TestEntityPool(t *testing.T) {
	pool := ecs.NewEntityPool()

	_, ok := pool.Take("bullet")
	assert.False(t, ok)

	first, second := ecs.NewEntity(), ecs.NewEntity()
	pool.Put("bullet", first)
	pool.Put("bullet", second)
	pool.Put("enemy", ecs.NewEntity())
	assert.Equal(t, 2, pool.Size("bullet"))

	e, ok := pool.Take("bullet")
	require.True(t, ok)
	assert.Same(t, first, e)

	e, ok = pool.Take("bullet")
	require.True(t, ok)
	assert.Same(t, second, e)
	assert.Zero(t, pool.Size("bullet"))

	pool.Clear()
	assert.Zero(t, pool.Size("enemy"))
}

func TestReusableEntity(t *testing.T) {
	w := ecs.NewGameWorld()
	pool := ecs.NewEntityPool()

	life := &Lifecycle{}
	e := newEntity(Bullet, 0, 0, life)
	e.SetReusable(true)
	e.OnNotActive(func() { pool.Put("bullet", e) })

	require.NoError(t, w.AddEntity(e))
	require.NoError(t, w.RemoveEntity(e))
	w.OnUpdate(0.016)

	assert.Equal(t, ecs.Cleaned, e.State())
	assert.Zero(t, life.Removed, "reusable entities keep their components")

	reused, ok := pool.Take("bullet")
	require.True(t, ok)
	require.NoError(t, w.AddEntity(reused))
	got, ok := ecs.Lookup[*Lifecycle](reused)
	require.True(t, ok)
	assert.Same(t, life, got)

	w.OnUpdate(0.016)
	assert.Equal(t, 1, life.Updated)
}
