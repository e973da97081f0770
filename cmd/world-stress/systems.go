package main

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/gameworld/ecs"
)

// GunSystem counts down every Gun and queues a bullet spawn when one is ready.
type GunSystem struct {
	Guns  ecs.Query[struct{ *Gun }]
	Tally ecs.Singleton[*Tally]
	rng   *rand.Rand
}

func (s *GunSystem) Execute(frame *ecs.UpdateFrame) {
	tally := s.Tally.Get()
	for e, item := range s.Guns.Iter() {
		gun := item.Gun
		gun.Cooldown -= frame.DeltaTime
		if gun.Cooldown > 0 {
			continue
		}
		gun.Cooldown += gun.Interval

		angle := s.rng.Float64() * 2 * math.Pi
		data := ecs.NewSpawnData(e.X(), e.Y()).
			Put("dx", math.Cos(angle)*bulletSpeed).
			Put("dy", math.Sin(angle)*bulletSpeed)
		frame.Commands.Spawn("bullet", data)
		if tally != nil {
			tally.Fired++
		}
	}
}

// HitSystem checks the bullets in flight against everything they overlap.
// It runs every Every frames; a bullet that hits a target expires on the
// next world update.
type HitSystem struct {
	Tally   ecs.Singleton[*Tally]
	Bullets *ecs.EntityGroup
	Every   int
	frame   int
}

func (s *HitSystem) Execute(frame *ecs.UpdateFrame) {
	s.frame++
	if s.frame%s.Every != 0 {
		return
	}

	tally := s.Tally.Get()
	s.Bullets.ForEach(func(bullet *ecs.Entity) {
		life, ok := ecs.Lookup[*Lifetime](bullet)
		if !ok || life.Remaining <= 0 {
			return
		}
		if tally != nil {
			tally.Collision++
		}
		for _, other := range frame.World.CollidingEntities(bullet) {
			if other.IsType("bullet") || other.IsType("turret") {
				continue
			}
			life.Remaining = 0
			if tally != nil {
				tally.Hits++
			}
			return
		}
	})
}

// ChurnSystem replaces PerFrame random drifters every frame.
type ChurnSystem struct {
	Tally         ecs.Singleton[*Tally]
	PerFrame      int
	Width, Height float64
	rng           *rand.Rand
}

func (s *ChurnSystem) Execute(frame *ecs.UpdateFrame) {
	tally := s.Tally.Get()
	picked := make(map[*ecs.Entity]bool, s.PerFrame)
	for range s.PerFrame {
		victim, ok := frame.World.RandomByType("drifter")
		if !ok || picked[victim] {
			continue
		}
		picked[victim] = true

		frame.Commands.Delete(victim)
		frame.Commands.Spawn("drifter", ecs.NewSpawnData(s.rng.Float64()*s.Width, s.rng.Float64()*s.Height))
		if tally != nil {
			tally.Churned++
		}
	}
}
