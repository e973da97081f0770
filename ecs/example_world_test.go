package ecs_test

import (
	"fmt"

	"github.com/plus3/gameworld/ecs"
)

type Patrol struct {
	ecs.ComponentBase
	Speed float64
}

func (p *Patrol) OnUpdate(tpf float64) {
	p.Entity().Transform().TranslateX(p.Speed * tpf)
}

// ExampleGameWorld shows the basic entity lifecycle. An added entity is
// active at once but is first updated on the next OnUpdate. A removed entity
// leaves queries immediately and is cleaned at the end of the next update.
func ExampleGameWorld() {
	world := ecs.NewGameWorld()

	guard := ecs.NewEntity()
	guard.SetType("guard")
	if err := guard.AddComponent(&Patrol{Speed: 10}); err != nil {
		panic(err)
	}
	if err := world.AddEntity(guard); err != nil {
		panic(err)
	}

	world.OnUpdate(0.5)
	world.OnUpdate(0.5)
	fmt.Printf("guard at x=%.0f\n", guard.X())

	if err := world.RemoveEntity(guard); err != nil {
		panic(err)
	}
	fmt.Println(guard.State(), world.EntityCount())

	world.OnUpdate(0.5)
	fmt.Println(guard.State())

	// Output:
	// guard at x=10
	// PendingRemoval 0
	// Cleaned
}

// ExampleGameWorld_Spawn registers a factory and spawns entities by name.
func ExampleGameWorld_Spawn() {
	world := ecs.NewGameWorld()
	err := world.AddEntityFactory(ecs.SpawnMap{
		"guard, sentry": func(data *ecs.SpawnData) (*ecs.Entity, error) {
			speed, _ := data.Float64("speed")
			return ecs.NewBuilder(data).
				BBox(ecs.Box(16, 32)).
				With(&Patrol{Speed: speed}).
				Build()
		},
	})
	if err != nil {
		panic(err)
	}

	guard, err := world.Spawn("guard", ecs.NewSpawnData(100, 40).Put("speed", 25))
	if err != nil {
		panic(err)
	}
	sentry, err := world.SpawnAt("sentry", 0, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(guard.Type(), guard.Position(), guard.BoundingBox().Height())
	fmt.Println(sentry.Type())
	fmt.Println(world.SpawnNames())

	// Output:
	// guard (100, 40) 32
	// sentry
	// [guard sentry]
}

// ExampleGameWorld_Group keeps a live view of every entity of a type.
func ExampleGameWorld_Group() {
	world := ecs.NewGameWorld()
	coins := world.Group("coin")

	for i := range 3 {
		coin := ecs.Build().Type("coin").At(float64(i*10), 0).MustBuild()
		_ = world.AddEntity(coin)
	}
	_ = world.AddEntity(ecs.Build().Type("rock").MustBuild())
	fmt.Println("coins:", coins.Size())

	coins.ForEachWhere(
		func(e *ecs.Entity) bool { return e.X() < 15 },
		func(e *ecs.Entity) { _ = world.RemoveEntity(e) },
	)
	fmt.Println("coins:", coins.Size())

	// Output:
	// coins: 3
	// coins: 1
}
