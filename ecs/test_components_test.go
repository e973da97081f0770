package ecs_test

import (
	"math"
	"reflect"

	"github.com/plus3/gameworld/ecs"
)

// Common test entity types
type EntityType int

const (
	Player EntityType = iota + 1
	Enemy
	Bullet
	Wall
)

// Common test component types
type Velocity struct {
	ecs.ComponentBase
	DX, DY float64
}

func (v *Velocity) OnUpdate(tpf float64) {
	v.Entity().Transform().Translate(v.DX*tpf, v.DY*tpf)
}

func (v *Velocity) Speed() float64 {
	return math.Hypot(v.DX, v.DY)
}

func (v *Velocity) Copy() ecs.Component {
	return &Velocity{DX: v.DX, DY: v.DY}
}

func (v *Velocity) Write(b *ecs.Bundle) {
	b.Set("dx", v.DX)
	b.Set("dy", v.DY)
}

func (v *Velocity) Read(b *ecs.Bundle) {
	v.DX, _ = b.Float64("dx")
	v.DY, _ = b.Float64("dy")
}

type Health struct {
	ecs.ComponentBase
	Current int
	Max     int
}

func (h *Health) Write(b *ecs.Bundle) {
	b.Set("current", h.Current)
	b.Set("max", h.Max)
}

func (h *Health) Read(b *ecs.Bundle) {
	h.Current, _ = b.Int("current")
	h.Max, _ = b.Int("max")
}

// Inventory holds shared mutable state and must deep copy it.
type Inventory struct {
	ecs.ComponentBase
	Items []string
}

func (i *Inventory) Copy() ecs.Component {
	return &Inventory{Items: append([]string(nil), i.Items...)}
}

// Steering can only be added next to a Velocity.
type Steering struct {
	ecs.ComponentBase
}

func (s *Steering) RequiredComponents() []reflect.Type {
	return []reflect.Type{ecs.TypeOf[*Velocity]()}
}

// Mover is satisfied by Velocity.
type Mover interface {
	ecs.Component
	Speed() float64
}

// Follower receives its sibling Velocity through dependency slots.
type Follower struct {
	ecs.ComponentBase
	velocity *Velocity
	mover    Mover
	health   *Health
}

func (f *Follower) Dependencies() []ecs.Dependency {
	return []ecs.Dependency{
		ecs.Inject(&f.velocity),
		ecs.Inject(&f.mover),
		ecs.InjectOptional(&f.health),
	}
}

// Lifecycle records every hook invocation.
type Lifecycle struct {
	ecs.ComponentBase
	Added, Removed, Updated int
	LastTpf                 float64
}

func (l *Lifecycle) OnAdded()   { l.Added++ }
func (l *Lifecycle) OnRemoved() { l.Removed++ }

func (l *Lifecycle) OnUpdate(tpf float64) {
	l.Updated++
	l.LastTpf = tpf
}

// Mutator tries to change its own entity while it is being updated.
type Mutator struct {
	ecs.ComponentBase
	AddErr    error
	RemoveErr error
}

func (m *Mutator) OnUpdate(tpf float64) {
	m.AddErr = m.Entity().AddComponent(&Health{})
	_, m.RemoveErr = ecs.Remove[*Velocity](m.Entity())
}

// Spawner adds a new entity to the world from inside its update.
type Spawner struct {
	ecs.ComponentBase
	Spawned *ecs.Entity
	Child   *Lifecycle
}

func (s *Spawner) OnUpdate(tpf float64) {
	if s.Spawned != nil {
		return
	}
	s.Child = &Lifecycle{}
	s.Spawned = ecs.NewEntity()
	_ = s.Spawned.AddComponent(s.Child)
	_ = s.Entity().World().AddEntity(s.Spawned)
}

// SelfRemover removes its entity from the world on the first update.
type SelfRemover struct {
	ecs.ComponentBase
}

func (s *SelfRemover) OnUpdate(tpf float64) {
	_ = s.Entity().World().RemoveEntity(s.Entity())
}

func newEntity(t EntityType, x, y float64, components ...ecs.Component) *ecs.Entity {
	e := ecs.NewEntity()
	e.SetType(t)
	e.SetPosition(x, y)
	if err := e.AddComponents(components...); err != nil {
		panic(err)
	}
	return e
}

func boxEntity(x, y, w, h float64) *ecs.Entity {
	e := ecs.NewEntity()
	e.SetPosition(x, y)
	e.BoundingBox().AddHitBox(ecs.NewHitBox(ecs.Box(w, h)))
	return e
}

// LevelSwitcher replaces or clears the world from inside its update.
type LevelSwitcher struct {
	ecs.ComponentBase
	Next  *ecs.Level
	Clear bool
	Err   error
}

func (s *LevelSwitcher) OnUpdate(tpf float64) {
	w := s.Entity().World()
	switch {
	case s.Next != nil:
		s.Err = w.SetLevel(s.Next)
		s.Next = nil
	case s.Clear:
		s.Clear = false
		w.Clear()
	}
}
