package main

import (
	_ "embed"
	"fmt"
	"math/rand/v2"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/ecs/level"
	"github.com/plus3/gameworld/internal/config"
	"go.uber.org/zap"
)

//go:embed level.yaml
var defaultLevel []byte

type sandbox struct {
	world     *ecs.GameWorld
	scheduler *ecs.Scheduler
	control   *ControlSystem
	score     *ecs.Singleton[*Score]
}

func newSandbox(cfg *config.Config, log *zap.Logger) (*sandbox, error) {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	world := ecs.NewGameWorld(
		ecs.WithLogger(log.Named("world")),
		ecs.WithRandom(rand.New(rand.NewPCG(seed, seed>>1))),
	)
	if err := world.AddEntityFactory(sandboxSpawns); err != nil {
		return nil, err
	}

	lvl, err := loadLevel(cfg.Sandbox.LevelFile, world)
	if err != nil {
		return nil, err
	}
	if err := world.SetLevel(lvl); err != nil {
		return nil, err
	}
	goal, _ := lvl.Properties.Int("goal")
	log.Info("level loaded",
		zap.String("name", lvl.Name),
		zap.Int("entities", len(lvl.Entities)),
		zap.Int("goal", goal))

	s := &sandbox{
		world:     world,
		scheduler: ecs.NewScheduler(world),
		control:   &ControlSystem{},
		score:     ecs.NewSingleton(world, &Score{Goal: goal}),
	}
	s.scheduler.Register(s.control)
	s.scheduler.Register(&PickupSystem{})
	return s, nil
}

func loadLevel(path string, world *ecs.GameWorld) (*ecs.Level, error) {
	if path == "" {
		return level.Parse(defaultLevel, world)
	}
	return level.LoadFile(path, world)
}

func (s *sandbox) player() (*ecs.Entity, bool) {
	return s.world.EntityByID("player", 1)
}

func (s *sandbox) scoreWindow() {
	score := s.score.Get()
	if score == nil {
		return
	}

	imgui.Begin("Score")
	imgui.Text(fmt.Sprintf("Points: %d / %d", score.Points, score.Goal))
	imgui.Text(fmt.Sprintf("Pickups collected: %d", score.Collected))
	if score.Goal > 0 && score.Points >= score.Goal {
		imgui.Text("Goal reached!")
	}
	if p, ok := s.player(); ok {
		imgui.Text(fmt.Sprintf("Player at (%.0f, %.0f)", p.X(), p.Y()))
	}
	imgui.End()
}
