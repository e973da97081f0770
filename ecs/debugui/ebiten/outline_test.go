package ebiten_test

import (
	"testing"

	"github.com/plus3/gameworld/ecs"
	debugui_ebiten "github.com/plus3/gameworld/ecs/debugui/ebiten"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlines(t *testing.T) {
	world := ecs.NewGameWorld()

	top := ecs.Build().At(0, 0).BBox(ecs.Box(10, 10)).
		Layer(ecs.RenderLayer{Name: "top", Index: 10}).MustBuild()
	bottom := ecs.Build().At(5, 0).BBox(ecs.Box(10, 10)).MustBuild()
	hidden := ecs.Build().At(100, 0).BBox(ecs.Box(10, 10)).MustBuild()
	hidden.View().SetVisible(false)
	alone := ecs.Build().At(50, 50).BBox(ecs.Box(4, 8)).MustBuild()
	require.NoError(t, world.AddEntities(top, bottom, hidden, alone, ecs.NewEntity()))

	outlines := debugui_ebiten.Outlines(world)
	require.Len(t, outlines, 3)

	assert.Equal(t, float32(5), outlines[0].X, "default layer first")
	assert.Equal(t, float32(50), outlines[1].X)
	assert.Equal(t, float32(8), outlines[1].H)
	assert.Equal(t, float32(0), outlines[2].X)

	assert.NotEqual(t, outlines[1].Color, outlines[0].Color, "colliding boxes are highlighted")
	assert.Equal(t, outlines[0].Color, outlines[2].Color)
}
