package ebiten_test

import (
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/ecs/debugui"
	debugui_ebiten "github.com/plus3/gameworld/ecs/debugui/ebiten"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Game World ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	world := ecs.NewGameWorld()

	// Register ImGui backend as a singleton
	backend := ecs.NewSingleton(world, &debugui_ebiten.ImguiBackend{
		EbitenBackend: imguiBackend,
	})
	debugui.SpawnInputState(world)

	// Add an entity with an ImGui render function
	_ = world.AddEntity(debugui.NewImguiItem(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the world!")
		imgui.End()
	}))

	// Something to look at
	_, _ = ecs.Build().At(100, 100).BBox(ecs.Box(64, 64)).BuildAndAttach(world)

	// Create scheduler and register ImguiSystem
	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&debugui.ImguiSystem{})

	host := &debugui_ebiten.Host{
		Scheduler:    scheduler,
		Backend:      backend.Get(),
		TickRate:     60,
		DrawHitBoxes: true,
		Background:   color.Black,
	}

	// Run the game
	if err := host.Run(); err != nil {
		panic(err)
	}
}
