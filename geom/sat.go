package geom

import "math"

// Corners returns the corners of r rotated by angle degrees about origin, in
// the order min, (max x, min y), max, (min x, max y).
func Corners(r Rect, origin Point2D, angle float64) [4]Point2D {
	c := [4]Point2D{
		{r.MinX, r.MinY},
		{r.MaxX(), r.MinY},
		{r.MaxX(), r.MaxY()},
		{r.MinX, r.MaxY()},
	}
	if angle == 0 {
		return c
	}
	for i := range c {
		c[i] = c[i].Rotate(origin, angle)
	}
	return c
}

// Overlaps reports whether the two oriented rectangles given by their corners
// intersect. Both rectangles contribute their two edge axes; the shapes are
// disjoint as soon as their projections on one axis do not overlap.
func Overlaps(a, b [4]Point2D) bool {
	axes := [4]Point2D{
		a[1].Sub(a[0]),
		a[3].Sub(a[0]),
		b[1].Sub(b[0]),
		b[3].Sub(b[0]),
	}
	for _, axis := range axes {
		if axis.X == 0 && axis.Y == 0 {
			continue
		}
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

func project(corners [4]Point2D, axis Point2D) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		d := c.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
