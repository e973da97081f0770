package ecs

// Singleton gives typed access to the one component of type T expected in a
// world, such as global game state. The holder entity is looked up lazily
// and re-resolved once it leaves the world.
type Singleton[T Component] struct {
	world  *GameWorld
	entity *Entity
}

// NewSingleton creates a Singleton accessor for world. If no active entity
// holds a T and an initializer is given, a new entity holding it is added.
func NewSingleton[T Component](world *GameWorld, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{}
	s.Init(world)

	if !s.Exists() && len(initializer) > 0 {
		e := NewEntity()
		if err := e.AddComponent(initializer[0]); err != nil {
			panic(err)
		}
		if err := world.AddEntity(e); err != nil {
			panic(err)
		}
		s.entity = e
	}
	return s
}

// Init initializes the Singleton with a world reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(world *GameWorld) {
	s.world = world
	s.entity = nil
}

func (s *Singleton[T]) resolve() *Entity {
	if s.entity != nil && s.entity.IsActive() && Has[T](s.entity) {
		return s.entity
	}
	s.entity = nil
	if s.world == nil {
		return nil
	}
	if e, ok := s.world.FindSingleton(Has[T]); ok {
		s.entity = e
	}
	return s.entity
}

// Get returns the component, or the zero T if no active entity holds one.
func (s *Singleton[T]) Get() T {
	e := s.resolve()
	if e == nil {
		var zero T
		return zero
	}
	c, _ := Lookup[T](e)
	return c
}

// Entity returns the entity holding the component, or nil.
func (s *Singleton[T]) Entity() *Entity {
	return s.resolve()
}

// Exists reports whether an active entity holds a T.
func (s *Singleton[T]) Exists() bool {
	return s.resolve() != nil
}
