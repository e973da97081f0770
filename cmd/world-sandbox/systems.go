package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gameworld/ecs"
)

// KeyState reports whether a key is held down.
type KeyState func(ebiten.Key) bool

// ControlSystem walks every Mover with the arrow or WASD keys. A step that
// would overlap a solid entity is undone.
type ControlSystem struct {
	Movers  ecs.Query[struct{ *Mover }]
	Pressed KeyState
}

func (s *ControlSystem) Execute(frame *ecs.UpdateFrame) {
	dx, dy := s.axis()
	if dx == 0 && dy == 0 {
		return
	}

	for e, item := range s.Movers.Iter() {
		if item.Mover.IsPaused() {
			continue
		}
		step := item.Mover.Speed * frame.DeltaTime
		t := e.Transform()
		t.Translate(dx*step, dy*step)
		if blocked(frame.World, e) {
			t.Translate(-dx*step, -dy*step)
		}
	}
}

func (s *ControlSystem) axis() (dx, dy float64) {
	pressed := s.Pressed
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		dx--
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		dx++
	}
	if pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW) {
		dy--
	}
	if pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}

func blocked(world *ecs.GameWorld, e *ecs.Entity) bool {
	for _, other := range world.CollidingEntities(e) {
		if other.IsType("wall") || other.IsType("crate") {
			return true
		}
	}
	return false
}

// PickupSystem collects the pickups touched by a Mover.
type PickupSystem struct {
	Movers ecs.Query[struct{ *Mover }]
	Score  ecs.Singleton[*Score]
}

func (s *PickupSystem) Execute(frame *ecs.UpdateFrame) {
	score := s.Score.Get()
	if score == nil {
		return
	}

	for e := range s.Movers.Iter() {
		for _, other := range frame.World.CollidingEntities(e) {
			p, ok := ecs.Lookup[*Pickup](other)
			if !ok {
				continue
			}
			score.Points += p.Value
			score.Collected++
			frame.Commands.Delete(other)
		}
	}
}
