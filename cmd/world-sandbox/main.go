package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gameworld/ecs"
	"github.com/plus3/gameworld/ecs/debugui"
	debugui_ebiten "github.com/plus3/gameworld/ecs/debugui/ebiten"
	"github.com/plus3/gameworld/internal/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file.")
	levelPath := flag.String("level", "", "Level file to load instead of the configured one.")
	noDebugUI := flag.Bool("no-debug-ui", false, "Disable the ImGui debug panels.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *levelPath != "" {
		cfg.Sandbox.LevelFile = *levelPath
	}
	if *noDebugUI {
		cfg.Sandbox.DebugUI = false
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	sb, err := newSandbox(cfg, log)
	if err != nil {
		log.Fatal("create sandbox", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Sandbox.Width, cfg.Sandbox.Height)
	ebiten.SetWindowTitle(cfg.Sandbox.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := &debugui_ebiten.Host{
		Scheduler:    sb.scheduler,
		TickRate:     cfg.World.TickRate,
		TimeScale:    cfg.World.TimeScale,
		Log:          log,
		DrawHitBoxes: true,
		Background:   color.RGBA{R: 0x1e, G: 0x1e, B: 0x28, A: 0xff},
	}

	if cfg.Sandbox.DebugUI {
		imguiBackend := ebitenbackend.NewEbitenBackend()
		imguiBackend.CreateWindow(cfg.Sandbox.Title, cfg.Sandbox.Width, cfg.Sandbox.Height)
		imgui.CurrentIO().SetIniFilename("")

		backend := ecs.NewSingleton(sb.world, &debugui_ebiten.ImguiBackend{
			EbitenBackend: imguiBackend,
		})
		host.Backend = backend.Get()

		debugui.SpawnInputState(sb.world)
		if _, err := debugui.SpawnDebugUI(sb.world); err != nil {
			log.Fatal("spawn debug ui", zap.Error(err))
		}
		if err := sb.world.AddEntity(debugui.NewImguiItem(sb.scoreWindow)); err != nil {
			log.Fatal("add score window", zap.Error(err))
		}
		sb.scheduler.Register(&debugui.ImguiSystem{})
	}

	if err := host.Run(); err != nil {
		log.Fatal("run sandbox", zap.Error(err))
	}
}
