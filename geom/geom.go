// Package geom holds the 2D math used by the entity world: points,
// axis-aligned rectangles and oriented rectangle overlap.
package geom

import (
	"fmt"
	"math"
)

// Point2D is a position or direction in world space.
type Point2D struct {
	X, Y float64
}

// Pt is shorthand for Point2D{X: x, Y: y}.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

func (p Point2D) Add(o Point2D) Point2D {
	return Point2D{p.X + o.X, p.Y + o.Y}
}

func (p Point2D) Sub(o Point2D) Point2D {
	return Point2D{p.X - o.X, p.Y - o.Y}
}

func (p Point2D) Mul(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

func (p Point2D) Dot(o Point2D) float64 {
	return p.X*o.X + p.Y*o.Y
}

func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the straight-line distance between p and o.
func (p Point2D) Distance(o Point2D) float64 {
	return p.Sub(o).Length()
}

// Normalize returns p scaled to unit length. The zero vector is returned unchanged.
func (p Point2D) Normalize() Point2D {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point2D{p.X / l, p.Y / l}
}

// Angle returns the direction of p in degrees, measured from the positive X axis.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}

// Rotate rotates p about origin by angle degrees.
func (p Point2D) Rotate(origin Point2D, angle float64) Point2D {
	if angle == 0 {
		return p
	}
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	d := p.Sub(origin)
	return Point2D{
		X: origin.X + d.X*cos - d.Y*sin,
		Y: origin.Y + d.X*sin + d.Y*cos,
	}
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Point3D is used for the 3D look direction of a transform.
type Point3D struct {
	X, Y, Z float64
}

func (p Point3D) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point3D) Normalize() Point3D {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point3D{p.X / l, p.Y / l, p.Z / l}
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	MinX, MinY    float64
	Width, Height float64
}

// NewRect returns the rectangle with minimum corner (x, y) and the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, Width: w, Height: h}
}

// RectFromPoints returns the smallest rectangle containing a and b.
func RectFromPoints(a, b Point2D) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

func (r Rect) MaxX() float64 { return r.MinX + r.Width }
func (r Rect) MaxY() float64 { return r.MinY + r.Height }

func (r Rect) Min() Point2D { return Point2D{r.MinX, r.MinY} }

func (r Rect) Center() Point2D {
	return Point2D{r.MinX + r.Width/2, r.MinY + r.Height/2}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.MinX && p.X <= r.MaxX() && p.Y >= r.MinY && p.Y <= r.MaxY()
}

// Intersects reports whether r and o overlap. Touching edges count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.MaxX() >= o.MinX && r.MaxY() >= o.MinY && r.MinX <= o.MaxX() && r.MinY <= o.MaxY()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, Width: r.Width, Height: r.Height}
}

// Expand grows r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{
		MinX:   r.MinX - dx,
		MinY:   r.MinY - dy,
		Width:  r.Width + 2*dx,
		Height: r.Height + 2*dy,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect[%g, %g, %g x %g]", r.MinX, r.MinY, r.Width, r.Height)
}
