package main

import (
	"github.com/plus3/gameworld/ecs"
)

// Mover holds the walking speed of a controllable entity.
type Mover struct {
	ecs.ComponentBase
	Speed float64
}

// Spin turns its entity at a constant rate.
type Spin struct {
	ecs.ComponentBase
	DegreesPerSecond float64
}

func (s *Spin) OnUpdate(tpf float64) {
	s.Entity().Transform().RotateBy(s.DegreesPerSecond * tpf)
}

// Pickup is collected by the player on contact.
type Pickup struct {
	ecs.ComponentBase
	Value int
}

func (p *Pickup) Copy() ecs.Component {
	return &Pickup{Value: p.Value}
}

// Score is the sandbox's running total.
type Score struct {
	ecs.ComponentBase
	Points    int
	Collected int
	Goal      int
}

func (s *Score) Write(b *ecs.Bundle) {
	b.Set("points", s.Points)
	b.Set("collected", s.Collected)
}

func (s *Score) Read(b *ecs.Bundle) {
	if v, ok := b.Int("points"); ok {
		s.Points = v
	}
	if v, ok := b.Int("collected"); ok {
		s.Collected = v
	}
}
