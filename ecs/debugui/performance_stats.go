package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) *PerformanceStatsComponent {
	return &PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
		timer:         NewFrameTimer(),
	}
}

func (ps *PerformanceStatsComponent) Render(world *ecs.GameWorld, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.record(deltaTime)
	stats := world.Stats()

	imgui.Text(fmt.Sprintf("Active Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Updated Entities: %d", stats.UpdateListCount))
	imgui.Text(fmt.Sprintf("Pending Add / Cleanup: %d / %d", stats.PendingAddCount, stats.PendingCleanupCount))
	imgui.Text(fmt.Sprintf("Groups: %d  Listeners: %d", stats.GroupCount, stats.ListenerCount))
	imgui.Text(fmt.Sprintf("Factories: %d (%d spawn names)", stats.FactoryCount, stats.SpawnNameCount))

	avgFrameTime := ps.averageFrameTime()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("World Update") {
		u := stats.Update
		imgui.Text(fmt.Sprintf("Updates: %d", u.Count))
		imgui.Text(fmt.Sprintf("Last: %s", u.LastDuration))
		imgui.Text(fmt.Sprintf("Avg: %s  Min: %s  Max: %s", u.AvgDuration, u.MinDuration, u.MaxDuration))
		imgui.TreePop()
	}

	imgui.End()
}

func (ps *PerformanceStatsComponent) record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

func (ps *PerformanceStatsComponent) averageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
