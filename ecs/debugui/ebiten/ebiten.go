// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine
// and a host that runs a game world inside an Ebiten window.
package ebiten

import (
	"image/color"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/gameworld/ecs"
	"go.uber.org/zap"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a singleton component so systems can reach it.
type ImguiBackend struct {
	ecs.ComponentBase
	*ebitenbackend.EbitenBackend
}

// Host implements ebiten.Game. Every tick it runs one scheduler frame between
// the ImGui begin and end calls; every draw it paints the visible entities'
// hit boxes and then the ImGui overlay.
type Host struct {
	Scheduler *ecs.Scheduler
	Backend   *ImguiBackend
	TickRate  float64
	TimeScale float64 // zero runs at normal speed
	Log       *zap.Logger

	// DrawHitBoxes outlines the hit boxes of every visible entity.
	DrawHitBoxes bool
	Background   color.Color
}

func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if h.Backend != nil {
		h.Backend.BeginFrame()
	}

	h.Scheduler.Once(h.frameTime())

	if h.Backend != nil {
		h.Backend.EndFrame()
	}
	return nil
}

func (h *Host) tickRate() float64 {
	if h.TickRate <= 0 {
		return float64(ebiten.TPS())
	}
	return h.TickRate
}

func (h *Host) frameTime() float64 {
	dt := 1.0 / h.tickRate()
	if h.TimeScale > 0 {
		dt *= h.TimeScale
	}
	return dt
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.Background != nil {
		screen.Fill(h.Background)
	}

	if h.DrawHitBoxes {
		for _, r := range Outlines(h.Scheduler.World()) {
			vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 1, r.Color, false)
		}
	}

	if h.Backend != nil {
		h.Backend.Draw(screen)
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.Backend != nil {
		h.Backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func (h *Host) Run() error {
	if h.Log != nil {
		h.Log.Info("starting ebiten host", zap.Float64("tick_rate", h.tickRate()))
	}
	return ebiten.RunGame(h)
}

// Outline is one hit box rectangle in screen space.
type Outline struct {
	X, Y, W, H float32
	Color      color.Color
}

var (
	hitBoxColor    = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	collisionColor = color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
)

// Outlines returns the hit boxes of the visible active entities, ordered by
// render layer then z index. Boxes of entities that collide with another
// entity are drawn in a warning colour.
func Outlines(world *ecs.GameWorld) []Outline {
	entities := world.EntitiesFiltered(func(e *ecs.Entity) bool {
		return e.View().IsVisible() && e.BoundingBox().HasHitBoxes()
	})
	sortByLayer(entities)

	var out []Outline
	for _, e := range entities {
		c := color.Color(hitBoxColor)
		if len(world.CollidingEntities(e)) > 0 {
			c = collisionColor
		}
		for _, hb := range e.BoundingBox().HitBoxes() {
			r := hb.WorldBounds(e.Transform())
			out = append(out, Outline{
				X: float32(r.MinX), Y: float32(r.MinY),
				W: float32(r.Width), H: float32(r.Height),
				Color: c,
			})
		}
	}
	return out
}
