package debugui

import (
	"github.com/plus3/gameworld/ecs"
)

// SpawnDebugUI adds the debug panels to world as one irremovable entity and
// returns it. The panels render through ImguiSystem, so the caller must
// register that system with its scheduler.
func SpawnDebugUI(world *ecs.GameWorld) (*ecs.Entity, error) {
	browser := NewEntityBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	types := NewTypeViewerComponent()
	perf := NewPerformanceStatsComponent(120)
	groups := NewGroupViewerComponent()

	render := func() {
		if selected := types.Render(world); selected != nil {
			browser.SetTypeFilter(*selected)
		}
		browser.Render(world)
		inspector.Render(world, browser.GetSelectedEntity())
		perf.Render(world, perf.timer.GetDeltaTime())
		groups.Render(world)
	}

	return ecs.Build().
		Type(debugUIType{}).
		With(browser, inspector, types, perf, groups, &ImguiItem{Render: render}).
		Irremovable().
		BuildAndAttach(world)
}

// SpawnInputState adds the ImguiInputState singleton if world has none.
func SpawnInputState(world *ecs.GameWorld) *ImguiInputState {
	return ecs.NewSingleton(world, &ImguiInputState{}).Get()
}

type debugUIType struct{}

func (debugUIType) String() string { return "debugui" }
