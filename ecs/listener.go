package ecs

// EntityWorldListener observes entities entering and leaving a GameWorld.
// Both calls happen synchronously inside AddEntity and RemoveEntity.
type EntityWorldListener interface {
	OnEntityAdded(e *Entity)
	OnEntityRemoved(e *Entity)
}

// WorldListenerFuncs adapts plain functions to EntityWorldListener. Register
// it by pointer so it can be removed again.
type WorldListenerFuncs struct {
	Added   func(e *Entity)
	Removed func(e *Entity)
}

func (l *WorldListenerFuncs) OnEntityAdded(e *Entity) {
	if l.Added != nil {
		l.Added(e)
	}
}

func (l *WorldListenerFuncs) OnEntityRemoved(e *Entity) {
	if l.Removed != nil {
		l.Removed(e)
	}
}

// ComponentListener observes components being attached to and detached from
// one entity.
type ComponentListener interface {
	OnAdded(c Component)
	OnRemoved(c Component)
}

// ComponentListenerFuncs adapts plain functions to ComponentListener.
type ComponentListenerFuncs struct {
	Added   func(c Component)
	Removed func(c Component)
}

func (l *ComponentListenerFuncs) OnAdded(c Component) {
	if l.Added != nil {
		l.Added(c)
	}
}

func (l *ComponentListenerFuncs) OnRemoved(c Component) {
	if l.Removed != nil {
		l.Removed(c)
	}
}
