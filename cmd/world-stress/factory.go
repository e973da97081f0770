package main

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/gameworld/ecs"
)

const (
	bulletSpeed = 400
	bulletLife  = 1.5
)

// stressFactory spawns the entity kinds of the stress world. Bullets are
// reusable and return to the pool when they leave the world.
type stressFactory struct {
	rng      *rand.Rand
	pool     *ecs.EntityPool
	poolSize int
	width    float64
	height   float64
	tally    func() *Tally
}

func (f *stressFactory) Spawners() map[string]ecs.SpawnFunc {
	return map[string]ecs.SpawnFunc{
		"drifter":          f.drifter,
		"bouncer, orbiter": f.bouncer,
		"turret":           f.turret,
		"bullet":           f.bullet,
	}
}

func (f *stressFactory) randomMotion(speed float64) *Motion {
	angle := f.rng.Float64() * 2 * math.Pi
	return &Motion{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed}
}

func (f *stressFactory) drifter(data *ecs.SpawnData) (*ecs.Entity, error) {
	return ecs.NewBuilder(data).
		BBox(ecs.Box(8, 8)).
		With(f.randomMotion(20)).
		Build()
}

func (f *stressFactory) bouncer(data *ecs.SpawnData) (*ecs.Entity, error) {
	b := ecs.NewBuilder(data).
		BBox(ecs.Circle(6)).
		With(f.randomMotion(60), &Bounce{Width: f.width, Height: f.height})
	if t, _ := data.Str("type"); t == "orbiter" {
		b.Rotate(45).With(ecs.NewTimeComponent(0.5))
	}
	return b.Build()
}

func (f *stressFactory) turret(data *ecs.SpawnData) (*ecs.Entity, error) {
	interval, ok := data.Float64("interval")
	if !ok {
		interval = 0.25
	}
	return ecs.NewBuilder(data).
		BBox(ecs.Box(16, 16)).
		With(&Gun{Interval: interval, Cooldown: f.rng.Float64() * interval}).
		Irremovable().
		Build()
}

func (f *stressFactory) bullet(data *ecs.SpawnData) (*ecs.Entity, error) {
	dx, _ := data.Float64("dx")
	dy, _ := data.Float64("dy")

	if e, ok := f.pool.Take("bullet"); ok {
		if e.State() == ecs.Cleaned {
			e.SetPosition(data.X, data.Y)
			if m, ok := ecs.Lookup[*Motion](e); ok {
				m.DX, m.DY = dx, dy
			}
			if l, ok := ecs.Lookup[*Lifetime](e); ok {
				l.Remaining = bulletLife
			}
			f.recycleOnExit(e)
			if t := f.tally(); t != nil {
				t.Recycled++
			}
			return e, nil
		}
		// still waiting for cleanup; it goes to the back of the queue
		f.pool.Put("bullet", e)
	}

	e, err := ecs.NewBuilder(data).
		BBox(ecs.Box(2, 2)).
		With(&Motion{DX: dx, DY: dy}, &Lifetime{Remaining: bulletLife}).
		Build()
	if err != nil {
		return nil, err
	}
	e.SetReusable(true)
	f.recycleOnExit(e)
	return e, nil
}

func (f *stressFactory) recycleOnExit(e *ecs.Entity) {
	e.OnNotActive(func() {
		if f.pool.Size("bullet") < f.poolSize {
			f.pool.Put("bullet", e)
		}
	})
}
