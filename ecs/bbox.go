package ecs

import (
	"math"
	"slices"

	"github.com/plus3/gameworld/geom"
)

// CollisionResult receives the first pair of colliding hit boxes.
type CollisionResult struct {
	BoxA, BoxB *HitBox
}

func (r *CollisionResult) init(a, b *HitBox) {
	r.BoxA, r.BoxB = a, b
}

// BoundingBoxComponent holds the hit boxes of an entity and answers spatial
// questions about them. The local extents are recomputed whenever the hit
// box list changes; world extents add the entity position.
type BoundingBoxComponent struct {
	ComponentBase

	transform *TransformComponent
	hitBoxes  []*HitBox

	minXLocal, minYLocal float64
	width, height        float64
}

// NewBoundingBoxComponent returns a bounding box made of the given hit boxes.
func NewBoundingBoxComponent(boxes ...*HitBox) *BoundingBoxComponent {
	b := &BoundingBoxComponent{hitBoxes: slices.Clone(boxes)}
	b.recompute()
	return b
}

func (*BoundingBoxComponent) coreComponent() {}

func (b *BoundingBoxComponent) Dependencies() []Dependency {
	return []Dependency{Inject(&b.transform)}
}

// AddHitBox appends h and recomputes the local bounds.
func (b *BoundingBoxComponent) AddHitBox(h *HitBox) {
	b.hitBoxes = append(b.hitBoxes, h)
	b.recompute()
}

// RemoveHitBox removes the hit box with the given name and reports whether one existed.
func (b *BoundingBoxComponent) RemoveHitBox(name string) bool {
	n := len(b.hitBoxes)
	b.hitBoxes = slices.DeleteFunc(b.hitBoxes, func(h *HitBox) bool { return h.name == name })
	if len(b.hitBoxes) == n {
		return false
	}
	b.recompute()
	return true
}

func (b *BoundingBoxComponent) ClearHitBoxes() {
	b.hitBoxes = nil
	b.recompute()
}

// HitBoxes returns a copy of the hit box list.
func (b *BoundingBoxComponent) HitBoxes() []*HitBox {
	return slices.Clone(b.hitBoxes)
}

func (b *BoundingBoxComponent) HasHitBoxes() bool { return len(b.hitBoxes) > 0 }

func (b *BoundingBoxComponent) recompute() {
	if len(b.hitBoxes) == 0 {
		b.minXLocal, b.minYLocal, b.width, b.height = 0, 0, 0, 0
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, h := range b.hitBoxes {
		minX = math.Min(minX, h.MinX())
		minY = math.Min(minY, h.MinY())
		maxX = math.Max(maxX, h.MaxX())
		maxY = math.Max(maxY, h.MaxY())
	}

	b.minXLocal, b.minYLocal = minX, minY
	b.width, b.height = maxX-minX, maxY-minY
}

func (b *BoundingBoxComponent) position() geom.Point2D {
	if b.transform == nil {
		return geom.Point2D{}
	}
	return b.transform.Position()
}

func (b *BoundingBoxComponent) Width() float64     { return b.width }
func (b *BoundingBoxComponent) Height() float64    { return b.height }
func (b *BoundingBoxComponent) MinXLocal() float64 { return b.minXLocal }
func (b *BoundingBoxComponent) MinYLocal() float64 { return b.minYLocal }
func (b *BoundingBoxComponent) MinXWorld() float64 { return b.minXLocal + b.position().X }
func (b *BoundingBoxComponent) MinYWorld() float64 { return b.minYLocal + b.position().Y }
func (b *BoundingBoxComponent) MaxXWorld() float64 { return b.MinXWorld() + b.width }
func (b *BoundingBoxComponent) MaxYWorld() float64 { return b.MinYWorld() + b.height }

func (b *BoundingBoxComponent) CenterLocal() geom.Point2D {
	return geom.Pt(b.minXLocal+b.width/2, b.minYLocal+b.height/2)
}

func (b *BoundingBoxComponent) CenterWorld() geom.Point2D {
	return b.CenterLocal().Add(b.position())
}

// WorldBounds is the union of all hit boxes in world space, ignoring rotation and scale.
func (b *BoundingBoxComponent) WorldBounds() geom.Rect {
	return geom.NewRect(b.MinXWorld(), b.MinYWorld(), b.width, b.height)
}

// IsOutside reports whether the world bounds lie completely outside r.
// Touching the edge of r counts as outside.
func (b *BoundingBoxComponent) IsOutside(r geom.Rect) bool {
	return b.MinXWorld() >= r.MaxX() || b.MaxXWorld() <= r.MinX ||
		b.MinYWorld() >= r.MaxY() || b.MaxYWorld() <= r.MinY
}

func (b *BoundingBoxComponent) IsWithin(r geom.Rect) bool {
	return !b.IsOutside(r)
}

// Range returns the world bounds expanded by w horizontally and h vertically.
func (b *BoundingBoxComponent) Range(w, h float64) geom.Rect {
	return b.WorldBounds().Expand(w, h)
}

// IsCollidingWith is true when any pair of hit boxes overlaps. Touching edges count.
func (b *BoundingBoxComponent) IsCollidingWith(other *BoundingBoxComponent) bool {
	var result CollisionResult
	return b.CheckCollision(other, &result)
}

// CheckCollision tests every pair of hit boxes and stores the first
// colliding pair in result. Unrotated entities use an AABB test, rotated
// ones the separating axis test on the rotated rectangles.
func (b *BoundingBoxComponent) CheckCollision(other *BoundingBoxComponent, result *CollisionResult) bool {
	t1, t2 := b.transformOrIdentity(), other.transformOrIdentity()
	rotated := t1.Angle() != 0 || t2.Angle() != 0

	for _, h1 := range b.hitBoxes {
		r1 := h1.WorldBounds(t1)
		for _, h2 := range other.hitBoxes {
			r2 := h2.WorldBounds(t2)

			var hit bool
			if rotated {
				hit = geom.Overlaps(
					geom.Corners(r1, rotationOriginWorld(t1), t1.Angle()),
					geom.Corners(r2, rotationOriginWorld(t2), t2.Angle()),
				)
			} else {
				hit = r1.Intersects(r2)
			}

			if hit {
				if result != nil {
					result.init(h1, h2)
				}
				return true
			}
		}
	}
	return false
}

var identityTransform = NewTransformComponent()

func (b *BoundingBoxComponent) transformOrIdentity() *TransformComponent {
	if b.transform == nil {
		return identityTransform
	}
	return b.transform
}

func rotationOriginWorld(t *TransformComponent) geom.Point2D {
	return t.Position().Add(t.RotationOrigin())
}

func (b *BoundingBoxComponent) copyFrom(src *BoundingBoxComponent) {
	b.hitBoxes = b.hitBoxes[:0]
	for _, h := range src.hitBoxes {
		b.hitBoxes = append(b.hitBoxes, h.Copy())
	}
	b.recompute()
}
