package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
)

// TypeInfo summarizes the active entities sharing one type tag.
type TypeInfo struct {
	Type           string
	ComponentTypes []string
	EntityCount    int
}

type TypeViewerCache struct {
	types         []TypeInfo
	sortColumn    int
	sortAscending bool
}

func NewTypeViewerComponent() *TypeViewerComponent {
	return &TypeViewerComponent{
		cache: &TypeViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render draws one row per entity type and returns the type clicked this
// frame, if any.
func (tv *TypeViewerComponent) Render(world *ecs.GameWorld) *string {
	if !imgui.BeginV("Type Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	tv.rebuildCache(world)

	maxEntityCount := 0
	for _, info := range tv.cache.types {
		maxEntityCount = max(maxEntityCount, info.EntityCount)
	}

	var clicked *string

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("TypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.cache.sortColumn = int(spec.ColumnIndex())
			tv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			tv.sortColumn = tv.cache.sortColumn
			tv.sortAscending = tv.cache.sortAscending
			tv.sortTypes()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, info := range tv.cache.types {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := tv.selectedType != nil && *tv.selectedType == info.Type
			if imgui.SelectableBoolV(info.Type, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				typ := info.Type
				clicked = &typ
				tv.selectedType = &typ
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(info.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// rebuildCache groups the active entities by type label. The component list
// of a type is the union over its entities, in first seen order.
func (tv *TypeViewerComponent) rebuildCache(world *ecs.GameWorld) {
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	tv.cache.types = tv.cache.types[:0]

	for e := range world.All() {
		label := typeLabel(e)
		i, ok := index[label]
		if !ok {
			i = len(tv.cache.types)
			index[label] = i
			seen[label] = make(map[string]bool)
			tv.cache.types = append(tv.cache.types, TypeInfo{Type: label})
		}

		info := &tv.cache.types[i]
		info.EntityCount++
		for _, t := range e.ComponentTypes() {
			name := t.String()
			if !seen[label][name] {
				seen[label][name] = true
				info.ComponentTypes = append(info.ComponentTypes, name)
			}
		}
	}

	tv.sortTypes()
}

func (tv *TypeViewerComponent) sortTypes() {
	sort.SliceStable(tv.cache.types, func(i, j int) bool {
		a, b := tv.cache.types[i], tv.cache.types[j]
		var less bool

		switch tv.cache.sortColumn {
		case 0:
			less = a.Type < b.Type
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = a.EntityCount < b.EntityCount
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !tv.cache.sortAscending {
			return !less
		}
		return less
	})
}
