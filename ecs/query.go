package ecs

import "iter"

// Query wraps a View and caches its matches for one frame. The Scheduler
// calls Execute on every registered Query field before systems run.
type Query[T any] struct {
	view  *View[T]
	world *GameWorld

	cachedEntities   []*Entity
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a Query over world.
func NewQuery[T any](world *GameWorld) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init initializes or re-initializes the Query with a world.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(world *GameWorld) {
	q.view = NewView[T](world)
	q.world = world
	q.cacheValid = false
}

// Execute rebuilds the cached matches.
func (q *Query[T]) Execute() {
	clear(q.cachedEntities)
	clear(q.cachedComponents)
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for e, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, e)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Iter returns an iterator over the matched entities and their view structs.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq2[*Entity, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(*Entity, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the view structs only.
// Panics if Execute() has not been called.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Len is the number of matches found by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}
