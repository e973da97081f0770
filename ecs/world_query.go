package ecs

import (
	"iter"
	"math"
	"reflect"
	"slices"

	"github.com/plus3/gameworld/geom"
	"github.com/rotisserie/eris"
)

// All iterates over the active entities in the order they were added.
func (w *GameWorld) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range w.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Entities returns a copy of the active entity list.
func (w *GameWorld) Entities() []*Entity {
	return slices.Clone(w.entities)
}

// EntityCount is the number of active entities, pending adds included.
func (w *GameWorld) EntityCount() int { return len(w.entities) }

// EntitiesFiltered returns the active entities accepted by pred.
func (w *GameWorld) EntitiesFiltered(pred func(*Entity) bool) []*Entity {
	var out []*Entity
	for _, e := range w.entities {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesByType returns the active entities whose type equals one of types.
// With no types every active entity is returned.
func (w *GameWorld) EntitiesByType(types ...any) []*Entity {
	if len(types) == 0 {
		return w.Entities()
	}
	return w.EntitiesFiltered(func(e *Entity) bool {
		return isAnyType(e, types)
	})
}

func isAnyType(e *Entity, types []any) bool {
	for _, t := range types {
		if e.IsType(t) {
			return true
		}
	}
	return false
}

// EntitiesByComponent returns the active entities holding a component of type t.
func (w *GameWorld) EntitiesByComponent(t reflect.Type) []*Entity {
	return w.EntitiesFiltered(func(e *Entity) bool {
		return e.HasComponent(t)
	})
}

// EntitiesWith returns the active entities holding a component of type T.
func EntitiesWith[T Component](w *GameWorld) []*Entity {
	return w.EntitiesByComponent(TypeOf[T]())
}

// EntitiesAt returns the active entities positioned exactly at p.
func (w *GameWorld) EntitiesAt(p geom.Point2D) []*Entity {
	return w.EntitiesFiltered(func(e *Entity) bool {
		return e.Position() == p
	})
}

// EntitiesInRange returns the active entities whose bounding box is within r.
func (w *GameWorld) EntitiesInRange(r geom.Rect) []*Entity {
	return w.EntitiesFiltered(func(e *Entity) bool {
		return e.BoundingBox().IsWithin(r)
	})
}

// CollidingEntities returns the other active entities whose hit boxes
// collide with those of e.
func (w *GameWorld) CollidingEntities(e *Entity) []*Entity {
	bbox := e.BoundingBox()
	if !bbox.HasHitBoxes() {
		return nil
	}
	return w.EntitiesFiltered(func(other *Entity) bool {
		return other != e && other.BoundingBox().HasHitBoxes() && bbox.IsCollidingWith(other.BoundingBox())
	})
}

// EntitiesByLayer returns the active entities whose view is on layer.
func (w *GameWorld) EntitiesByLayer(layer RenderLayer) []*Entity {
	return w.EntitiesFiltered(func(e *Entity) bool {
		return e.View().Layer() == layer
	})
}

// Random returns a uniformly chosen active entity accepted by pred.
func (w *GameWorld) Random(pred func(*Entity) bool) (*Entity, bool) {
	candidates := w.EntitiesFiltered(pred)
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[w.rng.IntN(len(candidates))], true
}

// RandomByType returns a uniformly chosen active entity of one of types.
func (w *GameWorld) RandomByType(types ...any) (*Entity, bool) {
	return w.Random(func(e *Entity) bool { return isAnyType(e, types) })
}

// ClosestEntity returns the active entity nearest to e, other than e,
// accepted by pred. Distance is measured between transform positions.
func (w *GameWorld) ClosestEntity(e *Entity, pred func(*Entity) bool) (*Entity, bool) {
	var closest *Entity
	best := math.Inf(1)
	for _, other := range w.entities {
		if other == e || !pred(other) {
			continue
		}
		if d := e.Distance(other); d < best {
			best, closest = d, other
		}
	}
	return closest, closest != nil
}

// FindSingleton returns the first active entity, in insertion order,
// accepted by pred.
func (w *GameWorld) FindSingleton(pred func(*Entity) bool) (*Entity, bool) {
	for _, e := range w.entities {
		if pred(e) {
			return e, true
		}
	}
	return nil, false
}

// Singleton is FindSingleton that reports a miss as ErrNoSuchEntity.
func (w *GameWorld) Singleton(pred func(*Entity) bool) (*Entity, error) {
	e, ok := w.FindSingleton(pred)
	if !ok {
		return nil, eris.Wrap(ErrNoSuchEntity, "singleton")
	}
	return e, nil
}

// SingletonByType returns the first active entity of one of types.
func (w *GameWorld) SingletonByType(types ...any) (*Entity, error) {
	e, ok := w.FindSingleton(func(e *Entity) bool { return isAnyType(e, types) })
	if !ok {
		return nil, eris.Wrapf(ErrNoSuchEntity, "singleton of type %v", types)
	}
	return e, nil
}

// EntityByID returns the active entity whose IDComponent matches name and id.
func (w *GameWorld) EntityByID(name string, id int) (*Entity, bool) {
	return w.ids.find(name, id)
}

// EntityByRef returns the active entity with the given runtime id.
func (w *GameWorld) EntityByRef(id EntityId) (*Entity, bool) {
	return w.index.Get(id)
}
