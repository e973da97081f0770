package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/internal/config"
	"go.uber.org/zap"
)

const (
	arenaWidth  = 4000
	arenaHeight = 4000
)

type simulation struct {
	cfg       *config.Config
	log       *zap.Logger
	rng       *rand.Rand
	seed      uint64
	world     *ecs.GameWorld
	scheduler *ecs.Scheduler
	pool      *ecs.EntityPool
	bullets   *ecs.EntityGroup
	tally     *ecs.Singleton[*Tally]
}

func newSimulation(cfg *config.Config, log *zap.Logger) (*simulation, error) {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	world := ecs.NewGameWorld(ecs.WithLogger(log.Named("world")), ecs.WithRandom(rng))
	s := &simulation{
		cfg:   cfg,
		log:   log,
		rng:   rng,
		seed:  seed,
		world: world,
		pool:  ecs.NewEntityPool(),
		tally: ecs.NewSingleton(world, &Tally{}),
	}

	factory := &stressFactory{
		rng:      rng,
		pool:     s.pool,
		poolSize: cfg.Stress.PoolSize,
		width:    arenaWidth,
		height:   arenaHeight,
		tally:    s.tally.Get,
	}
	if err := world.AddEntityFactory(factory); err != nil {
		return nil, err
	}
	s.bullets = world.Group("bullet")

	s.scheduler = ecs.NewScheduler(world)
	s.scheduler.Register(&GunSystem{rng: rng})
	s.scheduler.Register(&HitSystem{Bullets: s.bullets, Every: cfg.Stress.QueryEvery})
	s.scheduler.Register(&ChurnSystem{
		PerFrame: max(1, cfg.Stress.Entities/1000),
		Width:    arenaWidth,
		Height:   arenaHeight,
		rng:      rng,
	})

	log.Info("simulation ready",
		zap.Uint64("seed", seed),
		zap.Strings("spawnNames", world.SpawnNames()))
	return s, nil
}

// populate spawns n entities: one turret per hundred, the rest split
// between drifters, bouncers and orbiters.
func (s *simulation) populate(n int) error {
	turrets := max(1, n/100)
	for i := range n {
		x, y := s.rng.Float64()*arenaWidth, s.rng.Float64()*arenaHeight

		var err error
		switch {
		case i < turrets:
			_, err = s.world.Spawn("turret", ecs.NewSpawnData(x, y).Put("interval", 0.1+s.rng.Float64()*0.2))
		case i%3 == 0:
			_, err = s.world.SpawnAt("drifter", x, y)
		case i%3 == 1:
			_, err = s.world.SpawnAt("bouncer", x, y)
		default:
			_, err = s.world.SpawnAt("orbiter", x, y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// step runs one frame and returns how long it took.
func (s *simulation) step(dt float64) time.Duration {
	start := time.Now()
	s.scheduler.Once(dt * s.cfg.World.TimeScale)
	return time.Since(start)
}

// runFrames steps the simulation a fixed number of times with a fixed dt.
func (s *simulation) runFrames(frames int, dt float64) {
	for range frames {
		s.step(dt)
	}
}

// run steps the simulation with wall clock frame times until ctx is done.
func (s *simulation) run(ctx context.Context, report *Report) {
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, s.step(deltaTime.Seconds()))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	s.fill(report)
}

// fill copies the world and scheduler statistics into report.
func (s *simulation) fill(report *Report) {
	report.World = s.world.Stats()
	report.Scheduler = s.scheduler.GetStats()
	report.BulletsInFlight = s.bullets.Size()
	report.BulletsPooled = s.pool.Size("bullet")
	if t := s.tally.Get(); t != nil {
		report.Fired = t.Fired
		report.Recycled = t.Recycled
		report.Hits = t.Hits
		report.Churned = t.Churned
		report.CollisionChecks = t.Collision
	}
}
