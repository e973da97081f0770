package main

import (
	"reflect"

	"github.com/plus3/gameworld/ecs"
)

// Motion moves its entity every frame.
type Motion struct {
	ecs.ComponentBase
	DX, DY float64
}

func (m *Motion) OnUpdate(tpf float64) {
	m.Entity().Transform().Translate(m.DX*tpf, m.DY*tpf)
}

// Bounce reflects the entity's motion off the arena edges.
type Bounce struct {
	ecs.ComponentBase
	Width, Height float64
	motion        *Motion
}

func (b *Bounce) RequiredComponents() []reflect.Type {
	return []reflect.Type{ecs.TypeOf[*Motion]()}
}

func (b *Bounce) Dependencies() []ecs.Dependency {
	return []ecs.Dependency{ecs.Inject(&b.motion)}
}

func (b *Bounce) OnUpdate(float64) {
	t := b.Entity().Transform()
	if (t.X() < 0 && b.motion.DX < 0) || (t.X() > b.Width && b.motion.DX > 0) {
		b.motion.DX = -b.motion.DX
	}
	if (t.Y() < 0 && b.motion.DY < 0) || (t.Y() > b.Height && b.motion.DY > 0) {
		b.motion.DY = -b.motion.DY
	}
}

// Lifetime removes its entity once the remaining time runs out.
type Lifetime struct {
	ecs.ComponentBase
	Remaining float64
}

func (l *Lifetime) OnUpdate(tpf float64) {
	l.Remaining -= tpf
	if l.Remaining > 0 {
		return
	}
	e := l.Entity()
	if w := e.World(); w != nil {
		_ = w.RemoveEntity(e)
	}
}

// Gun fires a bullet every Interval seconds.
type Gun struct {
	ecs.ComponentBase
	Interval float64
	Cooldown float64
}

// Tally counts what happened during the run.
type Tally struct {
	ecs.ComponentBase
	Fired     int64
	Recycled  int64
	Hits      int64
	Churned   int64
	Collision int64 // collision checks performed
}
