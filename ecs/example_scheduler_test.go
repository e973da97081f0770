package ecs_test

import (
	"fmt"

	"github.com/plus3/gameworld/ecs"
)

type Ammo struct {
	ecs.ComponentBase
	Rounds int
}

type Score struct {
	ecs.ComponentBase
	Points int
}

// ReloadSystem refills empty weapons and queues a muzzle flash for each.
type ReloadSystem struct {
	Weapons ecs.Query[struct{ *Ammo }]
	Score   ecs.Singleton[*Score]
}

func (s *ReloadSystem) Execute(frame *ecs.UpdateFrame) {
	for e, item := range s.Weapons.Iter() {
		if item.Ammo.Rounds > 0 {
			continue
		}
		item.Ammo.Rounds = 6
		s.Score.Get().Points++
		frame.Commands.Spawn("flash", ecs.NewSpawnData(e.X(), e.Y()))
	}
}

// ExampleScheduler drives a world with systems. Queries are refreshed before
// the systems run, the world then updates its entities, and finally the
// commands queued by the systems are applied.
func ExampleScheduler() {
	world := ecs.NewGameWorld()
	_ = world.AddEntityFactory(ecs.SpawnMap{
		"flash": func(data *ecs.SpawnData) (*ecs.Entity, error) {
			return ecs.NewBuilder(data).Build()
		},
	})
	score := ecs.NewSingleton(world, &Score{})

	for i, rounds := range []int{0, 3, 0} {
		e := ecs.Build().At(float64(i), 0).With(&Ammo{Rounds: rounds}).MustBuild()
		_ = world.AddEntity(e)
	}

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&ReloadSystem{})

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	fmt.Println("reloads:", score.Get().Points)
	for _, flash := range world.EntitiesByType("flash") {
		fmt.Println("flash at", flash.Position())
	}

	// Output:
	// reloads: 2
	// flash at (0, 0)
	// flash at (2, 0)
}

// ExampleCommands defers structural changes made while iterating a query.
func ExampleCommands() {
	world := ecs.NewGameWorld()
	for _, rounds := range []int{0, 5, 0} {
		_ = world.AddEntity(ecs.Build().With(&Ammo{Rounds: rounds}).MustBuild())
	}

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&DiscardSystem{})
	scheduler.Once(0.016)

	fmt.Println("armed:", len(ecs.EntitiesWith[*Ammo](world)))

	// Output:
	// discarding 2 empty weapons
	// armed: 1
}

type DiscardSystem struct {
	Weapons ecs.Query[struct{ *Ammo }]
}

func (s *DiscardSystem) Execute(frame *ecs.UpdateFrame) {
	n := 0
	for e, item := range s.Weapons.Iter() {
		if item.Ammo.Rounds == 0 {
			frame.Commands.Delete(e)
			n++
		}
	}
	fmt.Printf("discarding %d empty weapons\n", n)
}

// ExampleNewView reads several components of each entity at once.
func ExampleNewView() {
	world := ecs.NewGameWorld()
	_ = world.AddEntity(ecs.Build().Type("pistol").With(&Ammo{Rounds: 6}).MustBuild())
	_ = world.AddEntity(ecs.Build().Type("rifle").With(&Ammo{Rounds: 30}, &Score{Points: 7}).MustBuild())

	view := ecs.NewView[struct {
		*Ammo
		Score *Score `ecs:"optional"`
	}](world)

	for e, item := range view.Iter() {
		points := 0
		if item.Score != nil {
			points = item.Score.Points
		}
		fmt.Println(e.Type(), item.Ammo.Rounds, points)
	}

	// Output:
	// pistol 6 0
	// rifle 30 7
}
