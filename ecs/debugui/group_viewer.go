package debugui

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
)

type GroupViewerCache struct {
	componentTypes []string
	typeMap        map[string]reflect.Type
}

func NewGroupViewerComponent() *GroupViewerComponent {
	return &GroupViewerComponent{
		selectedTypes: make(map[string]bool),
		cache:         &GroupViewerCache{},
	}
}

// Render lists the world's entity groups and lets the user try ad hoc
// component queries against the active entities.
func (gv *GroupViewerComponent) Render(world *ecs.GameWorld) {
	if !imgui.BeginV("Group Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Groups (%d)", len(world.Groups()))) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("GroupTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Types")
			imgui.TableSetupColumn("Size")
			imgui.TableHeadersRow()

			for _, g := range world.Groups() {
				imgui.TableNextRow()
				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%v", g.Types()))
				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%d", g.Size()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.Separator()

	gv.rebuildCache(world)

	imgui.Text("Select Component Types:")
	if imgui.Button("Clear All") {
		gv.selectedTypes = make(map[string]bool)
	}

	for _, compType := range gv.cache.componentTypes {
		selected := gv.selectedTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				gv.selectedTypes[compType] = true
			} else {
				delete(gv.selectedTypes, compType)
			}
		}
	}

	imgui.Separator()

	matching := gv.matchingEntities(world)
	if matching == nil {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))
	if imgui.TreeNodeStr("Entity Details") {
		for _, e := range matching {
			imgui.BulletText(e.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (gv *GroupViewerComponent) rebuildCache(world *ecs.GameWorld) {
	gv.cache.typeMap = make(map[string]reflect.Type)
	for e := range world.All() {
		for _, t := range e.ComponentTypes() {
			gv.cache.typeMap[t.String()] = t
		}
	}

	gv.cache.componentTypes = gv.cache.componentTypes[:0]
	for name := range gv.cache.typeMap {
		gv.cache.componentTypes = append(gv.cache.componentTypes, name)
	}
	sort.Strings(gv.cache.componentTypes)
}

// matchingEntities returns the active entities holding every selected
// component type, or nil when nothing is selected.
func (gv *GroupViewerComponent) matchingEntities(world *ecs.GameWorld) []*ecs.Entity {
	var required []reflect.Type
	for name := range gv.selectedTypes {
		if t, ok := gv.cache.typeMap[name]; ok {
			required = append(required, t)
		}
	}
	if len(required) == 0 {
		return nil
	}

	matching := world.EntitiesFiltered(func(e *ecs.Entity) bool {
		for _, t := range required {
			if !e.HasComponent(t) {
				return false
			}
		}
		return true
	})
	if matching == nil {
		matching = []*ecs.Entity{}
	}
	return matching
}
