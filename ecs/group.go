package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// EntityGroup is a live view of the active entities of a world whose type
// matches one of the group's types. It follows world add and remove
// notifications rather than rescanning. Create groups with GameWorld.Group.
type EntityGroup struct {
	world    *GameWorld
	types    []any
	entities []*Entity
	position *intmap.Map[EntityId, int]
	disposed bool
}

func newEntityGroup(w *GameWorld, types []any) *EntityGroup {
	g := &EntityGroup{
		world:    w,
		types:    slices.Clone(types),
		position: intmap.New[EntityId, int](64),
	}
	for _, e := range w.entities {
		g.OnEntityAdded(e)
	}
	return g
}

// Types returns the type tags the group follows.
func (g *EntityGroup) Types() []any {
	return slices.Clone(g.types)
}

func (g *EntityGroup) OnEntityAdded(e *Entity) {
	if g.disposed || !isAnyType(e, g.types) {
		return
	}
	if _, ok := g.position.Get(e.id); ok {
		return
	}
	g.position.Put(e.id, len(g.entities))
	g.entities = append(g.entities, e)
}

func (g *EntityGroup) OnEntityRemoved(e *Entity) {
	i, ok := g.position.Get(e.id)
	if !ok {
		return
	}
	g.position.Del(e.id)

	last := len(g.entities) - 1
	if i != last {
		moved := g.entities[last]
		g.entities[i] = moved
		g.position.Put(moved.id, i)
	}
	g.entities[last] = nil
	g.entities = g.entities[:last]
}

// Size is the current number of members.
func (g *EntityGroup) Size() int { return len(g.entities) }

func (g *EntityGroup) Contains(e *Entity) bool {
	_, ok := g.position.Get(e.id)
	return ok
}

// Entities returns a copy of the current members.
func (g *EntityGroup) Entities() []*Entity {
	return slices.Clone(g.entities)
}

// All iterates over a snapshot of the members, so the action may add or
// remove entities.
func (g *EntityGroup) All() iter.Seq[*Entity] {
	snapshot := g.Entities()
	return func(yield func(*Entity) bool) {
		for _, e := range snapshot {
			if !e.IsActive() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ForEach calls action on a snapshot of the members.
func (g *EntityGroup) ForEach(action func(*Entity)) {
	for e := range g.All() {
		action(e)
	}
}

func (g *EntityGroup) ForEachWhere(pred func(*Entity) bool, action func(*Entity)) {
	for e := range g.All() {
		if pred(e) {
			action(e)
		}
	}
}

// Dispose detaches the group from its world. The group is empty afterwards
// and never tracks new entities.
func (g *EntityGroup) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.world.releaseGroup(g)
	clear(g.entities)
	g.entities = nil
	g.position.Clear()
}

func (g *EntityGroup) IsDisposed() bool { return g.disposed }
