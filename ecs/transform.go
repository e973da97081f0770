package ecs

import (
	"math"
	"slices"

	"github.com/plus3/gameworld/geom"
)

// TransformComponent holds position, rotation and scale. Every entity has
// one. Changes are published to observers registered with OnChange, which is
// how the view and other collaborators learn about movement.
type TransformComponent struct {
	ComponentBase

	position geom.Point2D
	z        float64
	angle    float64
	scaleX   float64
	scaleY   float64
	scaleZ   float64

	scaleOrigin    geom.Point2D
	rotationOrigin geom.Point2D
	localAnchor    geom.Point2D
	direction3D    geom.Point3D

	observers []*transformObserver
}

type transformObserver struct {
	fn func(*TransformComponent)
}

// NewTransformComponent returns an identity transform at the origin.
func NewTransformComponent() *TransformComponent {
	return &TransformComponent{
		scaleX:      1,
		scaleY:      1,
		scaleZ:      1,
		direction3D: geom.Point3D{Z: 1},
	}
}

func (*TransformComponent) coreComponent() {}

// OnChange registers fn to run after every mutation. The returned function
// removes the registration.
func (t *TransformComponent) OnChange(fn func(*TransformComponent)) func() {
	o := &transformObserver{fn: fn}
	t.observers = append(t.observers, o)
	return func() {
		t.observers = slices.DeleteFunc(slices.Clone(t.observers), func(other *transformObserver) bool {
			return other == o
		})
	}
}

func (t *TransformComponent) changed() {
	for _, o := range t.observers {
		o.fn(t)
	}
}

func (t *TransformComponent) X() float64 { return t.position.X }
func (t *TransformComponent) Y() float64 { return t.position.Y }
func (t *TransformComponent) Z() float64 { return t.z }

func (t *TransformComponent) Position() geom.Point2D { return t.position }

func (t *TransformComponent) SetX(x float64) {
	t.position.X = x
	t.changed()
}

func (t *TransformComponent) SetY(y float64) {
	t.position.Y = y
	t.changed()
}

func (t *TransformComponent) SetZ(z float64) {
	t.z = z
	t.changed()
}

func (t *TransformComponent) SetPosition(x, y float64) {
	t.position = geom.Pt(x, y)
	t.changed()
}

// AnchoredPosition is the position of the local anchor in world space.
func (t *TransformComponent) AnchoredPosition() geom.Point2D {
	return t.position.Add(t.localAnchor)
}

// SetAnchoredPosition moves the entity so that its local anchor sits at p.
func (t *TransformComponent) SetAnchoredPosition(p geom.Point2D) {
	t.position = p.Sub(t.localAnchor)
	t.changed()
}

func (t *TransformComponent) LocalAnchor() geom.Point2D { return t.localAnchor }

func (t *TransformComponent) SetLocalAnchor(p geom.Point2D) {
	t.localAnchor = p
	t.changed()
}

// Angle is the rotation in degrees.
func (t *TransformComponent) Angle() float64 { return t.angle }

func (t *TransformComponent) SetAngle(deg float64) {
	t.angle = deg
	t.changed()
}

func (t *TransformComponent) RotateBy(deg float64) {
	t.SetAngle(t.angle + deg)
}

// RotateToVector points the entity along v.
func (t *TransformComponent) RotateToVector(v geom.Point2D) {
	t.SetAngle(v.Angle())
}

func (t *TransformComponent) ScaleX() float64 { return t.scaleX }
func (t *TransformComponent) ScaleY() float64 { return t.scaleY }
func (t *TransformComponent) ScaleZ() float64 { return t.scaleZ }

func (t *TransformComponent) SetScale(sx, sy float64) {
	t.scaleX, t.scaleY = sx, sy
	t.changed()
}

func (t *TransformComponent) SetScaleZ(sz float64) {
	t.scaleZ = sz
	t.changed()
}

// ScaleOrigin is the point, relative to the entity position, scaling is applied about.
func (t *TransformComponent) ScaleOrigin() geom.Point2D { return t.scaleOrigin }

func (t *TransformComponent) SetScaleOrigin(p geom.Point2D) {
	t.scaleOrigin = p
	t.changed()
}

// RotationOrigin is the point, relative to the entity position, rotation is applied about.
func (t *TransformComponent) RotationOrigin() geom.Point2D { return t.rotationOrigin }

func (t *TransformComponent) SetRotationOrigin(p geom.Point2D) {
	t.rotationOrigin = p
	t.changed()
}

// Direction3D is the normalized look direction used by 3D collaborators.
func (t *TransformComponent) Direction3D() geom.Point3D { return t.direction3D }

// LookAt points the 3D direction from the entity position towards target.
func (t *TransformComponent) LookAt(target geom.Point3D) {
	dir := geom.Point3D{X: target.X - t.position.X, Y: target.Y - t.position.Y, Z: target.Z - t.z}
	if dir.Length() == 0 {
		return
	}
	t.direction3D = dir.Normalize()
	t.changed()
}

// Translate moves the position by dx, dy.
func (t *TransformComponent) Translate(dx, dy float64) {
	t.position = t.position.Add(geom.Pt(dx, dy))
	t.changed()
}

func (t *TransformComponent) TranslateX(dx float64) { t.Translate(dx, 0) }
func (t *TransformComponent) TranslateY(dy float64) { t.Translate(0, dy) }

// TranslateTowards moves at most distance towards target without overshooting it.
func (t *TransformComponent) TranslateTowards(target geom.Point2D, distance float64) {
	delta := target.Sub(t.position)
	if delta.Length() <= distance {
		t.position = target
		t.changed()
		return
	}
	step := delta.Normalize().Mul(distance)
	t.Translate(step.X, step.Y)
}

// Distance is the straight-line distance between the two positions.
func (t *TransformComponent) Distance(other *TransformComponent) float64 {
	return t.position.Distance(other.position)
}

// Direction returns the unit vector pointing along the current angle.
func (t *TransformComponent) Direction() geom.Point2D {
	rad := t.angle * math.Pi / 180
	return geom.Pt(math.Cos(rad), math.Sin(rad))
}

func (t *TransformComponent) copyFrom(src *TransformComponent) {
	t.position = src.position
	t.z = src.z
	t.angle = src.angle
	t.scaleX, t.scaleY, t.scaleZ = src.scaleX, src.scaleY, src.scaleZ
	t.scaleOrigin = src.scaleOrigin
	t.rotationOrigin = src.rotationOrigin
	t.localAnchor = src.localAnchor
	t.direction3D = src.direction3D
	t.changed()
}

func (t *TransformComponent) Copy() Component {
	cp := NewTransformComponent()
	cp.copyFrom(t)
	return cp
}

func (t *TransformComponent) Write(b *Bundle) {
	b.Set("x", t.position.X)
	b.Set("y", t.position.Y)
	b.Set("z", t.z)
	b.Set("angle", t.angle)
	b.Set("scaleX", t.scaleX)
	b.Set("scaleY", t.scaleY)
	b.Set("scaleZ", t.scaleZ)
}

func (t *TransformComponent) Read(b *Bundle) {
	read := func(key string, dst *float64) {
		if v, ok := b.Float64(key); ok {
			*dst = v
		}
	}
	read("x", &t.position.X)
	read("y", &t.position.Y)
	read("z", &t.z)
	read("angle", &t.angle)
	read("scaleX", &t.scaleX)
	read("scaleY", &t.scaleY)
	read("scaleZ", &t.scaleZ)
	t.changed()
}
