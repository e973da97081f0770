package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gameworld/ecs"
)

func NewComponentInspectorComponent() *ComponentInspectorComponent {
	return &ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(world *ecs.GameWorld, selectedEntityId ecs.EntityId) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = selectedEntityId

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity, ok := world.EntityByRef(ci.selectedEntityId)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d is no longer in the world", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", entity.ID()))
	imgui.Text(fmt.Sprintf("Type: %s", typeLabel(entity)))
	imgui.Text(fmt.Sprintf("State: %s", entity.State()))
	imgui.Separator()

	ci.renderTransform(entity.Transform())
	ci.renderView(entity.View())
	if imgui.TreeNodeStr(fmt.Sprintf("Hit boxes (%d)", len(entity.BoundingBox().HitBoxes()))) {
		for _, h := range entity.BoundingBox().HitBoxes() {
			imgui.BulletText(h.String())
		}
		imgui.TreePop()
	}

	if entity.Properties().Len() > 0 && imgui.TreeNodeStr("Properties") {
		for k, v := range entity.Properties().All() {
			imgui.Text(fmt.Sprintf("%s: %v", k, v))
		}
		imgui.TreePop()
	}

	for _, component := range entity.Components() {
		compType := reflect.TypeOf(component)
		if isCoreType(compType) {
			continue
		}

		label := compType.String()
		if component.IsPaused() {
			label += " (paused)"
		}
		if imgui.TreeNodeStr(label) {
			paused := component.IsPaused()
			if imgui.Checkbox("Paused", &paused) {
				if paused {
					component.Pause()
				} else {
					component.Resume()
				}
			}
			ci.renderComponent(component, compType.Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

var coreTypes = []reflect.Type{
	ecs.TypeOf[*ecs.TypeComponent](),
	ecs.TypeOf[*ecs.TransformComponent](),
	ecs.TypeOf[*ecs.BoundingBoxComponent](),
	ecs.TypeOf[*ecs.ViewComponent](),
}

func isCoreType(t reflect.Type) bool {
	for _, core := range coreTypes {
		if t == core {
			return true
		}
	}
	return false
}

func (ci *ComponentInspectorComponent) renderTransform(t *ecs.TransformComponent) {
	if !imgui.TreeNodeStr("Transform") {
		return
	}

	x, y := float32(t.X()), float32(t.Y())
	if floatInput("X", &x) {
		t.SetX(float64(x))
	}
	if floatInput("Y", &y) {
		t.SetY(float64(y))
	}

	angle := float32(t.Angle())
	if floatInput("Angle", &angle) {
		t.SetAngle(float64(angle))
	}

	sx, sy := float32(t.ScaleX()), float32(t.ScaleY())
	if floatInput("Scale X", &sx) || floatInput("Scale Y", &sy) {
		t.SetScale(float64(sx), float64(sy))
	}

	imgui.TreePop()
}

func (ci *ComponentInspectorComponent) renderView(v *ecs.ViewComponent) {
	if !imgui.TreeNodeStr("View") {
		return
	}

	imgui.Text(fmt.Sprintf("Layer: %s", v.Layer()))

	z := int32(v.ZIndex())
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("Z Index", &z) {
		v.SetZIndex(int(z))
	}

	visible := v.IsVisible()
	if imgui.Checkbox("Visible", &visible) {
		v.SetVisible(visible)
	}

	opacity := float32(v.Opacity())
	if floatInput("Opacity", &opacity) {
		v.SetOpacity(float64(opacity))
	}

	imgui.TreePop()
}

func floatInput(name string, v *float32) bool {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	return imgui.InputFloat(fmt.Sprintf("##%s", name), v)
}

func (ci *ComponentInspectorComponent) renderComponent(component ecs.Component, compType reflect.Type) {
	val := reflect.ValueOf(component).Elem()

	for _, field := range globalReflectionCache.GetFields(compType) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}

		ci.renderField(field.Name, fieldVal, field)
	}
}

// renderField edits val in place. Fields reached through the component
// pointer are addressable, so edits land on the attached component.
func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.IsPointer && val.Kind() == reflect.Pointer && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		if floatInput(name, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range globalReflectionCache.GetFields(val.Type()) {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer && !nestedVal.IsNil() {
					nestedVal = nestedVal.Elem()
				}
				ci.renderField(nf.Name, nestedVal, nf)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: %s", name, val.Type()))
		}
	}
}
