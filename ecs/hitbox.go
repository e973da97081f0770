package ecs

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/plus3/gameworld/geom"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// BoundingShape is the outline of a hit box. Circles collide through their
// bounding square; the kind is kept for debug drawing.
type BoundingShape struct {
	Kind          ShapeKind
	Width, Height float64
}

// Box is a w by h rectangle.
func Box(w, h float64) BoundingShape {
	return BoundingShape{Kind: ShapeBox, Width: w, Height: h}
}

func Circle(radius float64) BoundingShape {
	return BoundingShape{Kind: ShapeCircle, Width: radius * 2, Height: radius * 2}
}

// HitBox is a named shape placed at an offset from the entity position.
type HitBox struct {
	name   string
	offset geom.Point2D
	shape  BoundingShape
}

// NewHitBox returns a hit box at the entity origin with a generated name.
func NewHitBox(shape BoundingShape) *HitBox {
	return NewNamedHitBox(uuid.NewString(), geom.Point2D{}, shape)
}

func NewNamedHitBox(name string, offset geom.Point2D, shape BoundingShape) *HitBox {
	return &HitBox{name: name, offset: offset, shape: shape}
}

func (h *HitBox) Name() string           { return h.name }
func (h *HitBox) Offset() geom.Point2D   { return h.offset }
func (h *HitBox) Shape() BoundingShape   { return h.shape }
func (h *HitBox) Width() float64         { return h.shape.Width }
func (h *HitBox) Height() float64        { return h.shape.Height }
func (h *HitBox) MinX() float64          { return h.offset.X }
func (h *HitBox) MinY() float64          { return h.offset.Y }
func (h *HitBox) MaxX() float64          { return h.offset.X + h.shape.Width }
func (h *HitBox) MaxY() float64          { return h.offset.Y + h.shape.Height }
func (h *HitBox) LocalBounds() geom.Rect { return geom.NewRect(h.offset.X, h.offset.Y, h.shape.Width, h.shape.Height) }

// WorldBounds places the hit box using t, scaling it about the transform's
// scale origin.
func (h *HitBox) WorldBounds(t *TransformComponent) geom.Rect {
	origin := t.ScaleOrigin()
	sx, sy := t.ScaleX(), t.ScaleY()
	x, y := t.X(), t.Y()

	x1 := origin.X - (origin.X-h.MinX())*sx + x
	x2 := origin.X - (origin.X-h.MaxX())*sx + x
	y1 := origin.Y - (origin.Y-h.MinY())*sy + y
	y2 := origin.Y - (origin.Y-h.MaxY())*sy + y

	return geom.NewRect(math.Min(x1, x2), math.Min(y1, y2), math.Abs(x2-x1), math.Abs(y2-y1))
}

func (h *HitBox) Copy() *HitBox {
	cp := *h
	return &cp
}

func (h *HitBox) String() string {
	return fmt.Sprintf("HitBox(%s, %s %gx%g at %s)", h.name, h.shape.Kind, h.shape.Width, h.shape.Height, h.offset)
}
