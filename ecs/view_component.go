package ecs

import "fmt"

// RenderLayer groups views for the renderer. Higher indices draw on top.
type RenderLayer struct {
	Name  string
	Index int
}

var DefaultLayer = RenderLayer{Name: "DEFAULT", Index: 0}

func (l RenderLayer) String() string {
	return fmt.Sprintf("%s(%d)", l.Name, l.Index)
}

// ViewComponent is the handle a renderer uses to draw an entity. Node is an
// opaque payload owned by the renderer. The view becomes dirty whenever the
// entity transform changes; renderers clear it with MarkClean after syncing.
type ViewComponent struct {
	ComponentBase

	Node any

	transform   *TransformComponent
	unsubscribe func()

	layer   RenderLayer
	zIndex  int
	opacity float64
	visible bool
	dirty   bool
}

// NewViewComponent returns a visible, fully opaque view on the default layer.
func NewViewComponent() *ViewComponent {
	return &ViewComponent{
		layer:   DefaultLayer,
		opacity: 1,
		visible: true,
		dirty:   true,
	}
}

func (*ViewComponent) coreComponent() {}

func (v *ViewComponent) Dependencies() []Dependency {
	return []Dependency{Inject(&v.transform)}
}

func (v *ViewComponent) OnAdded() {
	v.unsubscribe = v.transform.OnChange(func(*TransformComponent) {
		v.dirty = true
	})
	v.dirty = true
}

func (v *ViewComponent) OnRemoved() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func (v *ViewComponent) Layer() RenderLayer { return v.layer }

func (v *ViewComponent) SetLayer(l RenderLayer) {
	v.layer = l
	v.dirty = true
}

func (v *ViewComponent) ZIndex() int { return v.zIndex }

func (v *ViewComponent) SetZIndex(z int) {
	v.zIndex = z
	v.dirty = true
}

func (v *ViewComponent) Opacity() float64 { return v.opacity }

func (v *ViewComponent) SetOpacity(o float64) {
	v.opacity = o
	v.dirty = true
}

func (v *ViewComponent) IsVisible() bool { return v.visible }

func (v *ViewComponent) SetVisible(visible bool) {
	v.visible = visible
	v.dirty = true
}

// Dirty reports whether anything the renderer reads changed since MarkClean.
func (v *ViewComponent) Dirty() bool { return v.dirty }

func (v *ViewComponent) MarkClean() { v.dirty = false }

func (v *ViewComponent) copyFrom(src *ViewComponent) {
	v.Node = src.Node
	v.layer = src.layer
	v.zIndex = src.zIndex
	v.opacity = src.opacity
	v.visible = src.visible
	v.dirty = true
}
