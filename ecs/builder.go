package ecs

import (
	"github.com/plus3/gameworld/geom"
	"github.com/rotisserie/eris"
)

// EntityBuilder assembles an entity step by step, typically inside a
// SpawnFunc. The first failing step is reported by Build.
//
//	e, err := ecs.NewBuilder(data).
//		Type(Enemy).
//		BBox(ecs.Box(40, 40)).
//		With(&Patrol{Speed: 50}).
//		Build()
type EntityBuilder struct {
	entity *Entity
	err    error
}

// Build starts from an empty entity at the origin.
func Build() *EntityBuilder {
	return &EntityBuilder{entity: NewEntity()}
}

// NewBuilder starts at the spawn position and copies the spawn properties.
// A string "type" property becomes the entity type.
func NewBuilder(data *SpawnData) *EntityBuilder {
	b := Build()
	if data == nil {
		return b
	}
	b.entity.SetPosition(data.X, data.Y)
	b.entity.properties.Merge(&data.PropertyMap)
	if t, ok := data.Str("type"); ok {
		b.entity.SetType(t)
	}
	return b
}

func (b *EntityBuilder) At(x, y float64) *EntityBuilder {
	b.entity.SetPosition(x, y)
	return b
}

func (b *EntityBuilder) AtPoint(p geom.Point2D) *EntityBuilder {
	return b.At(p.X, p.Y)
}

func (b *EntityBuilder) Type(value any) *EntityBuilder {
	b.entity.SetType(value)
	return b
}

func (b *EntityBuilder) Rotate(deg float64) *EntityBuilder {
	b.entity.Transform().SetAngle(deg)
	return b
}

func (b *EntityBuilder) Scale(sx, sy float64) *EntityBuilder {
	b.entity.Transform().SetScale(sx, sy)
	return b
}

// BBox adds an unnamed hit box with the given shape at the entity origin.
func (b *EntityBuilder) BBox(shape BoundingShape) *EntityBuilder {
	b.entity.BoundingBox().AddHitBox(NewHitBox(shape))
	return b
}

func (b *EntityBuilder) HitBox(h *HitBox) *EntityBuilder {
	b.entity.BoundingBox().AddHitBox(h)
	return b
}

// View sets the renderer payload.
func (b *EntityBuilder) View(node any) *EntityBuilder {
	b.entity.View().Node = node
	return b
}

func (b *EntityBuilder) Layer(l RenderLayer) *EntityBuilder {
	b.entity.View().SetLayer(l)
	return b
}

func (b *EntityBuilder) ZIndex(z int) *EntityBuilder {
	b.entity.View().SetZIndex(z)
	return b
}

func (b *EntityBuilder) Property(key string, value any) *EntityBuilder {
	b.entity.SetProperty(key, value)
	return b
}

func (b *EntityBuilder) With(components ...Component) *EntityBuilder {
	if b.err != nil {
		return b
	}
	if err := b.entity.AddComponents(components...); err != nil {
		b.err = err
	}
	return b
}

// WithID adds an IDComponent.
func (b *EntityBuilder) WithID(name string, id int) *EntityBuilder {
	return b.With(NewIDComponent(name, id))
}

// Irremovable adds an IrremovableComponent.
func (b *EntityBuilder) Irremovable() *EntityBuilder {
	return b.With(&IrremovableComponent{})
}

func (b *EntityBuilder) Build() (*Entity, error) {
	if b.err != nil {
		return nil, eris.Wrap(b.err, "build entity")
	}
	return b.entity, nil
}

// MustBuild is Build for assemblies that cannot fail.
func (b *EntityBuilder) MustBuild() *Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

// BuildAndAttach builds the entity and adds it to w.
func (b *EntityBuilder) BuildAndAttach(w *GameWorld) (*Entity, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := w.AddEntity(e); err != nil {
		return nil, err
	}
	return e, nil
}
