package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/gameworld/geom"
	"github.com/stretchr/testify/assert"
)

func TestPoint2D(t *testing.T) {
	t.Run("distance", func(t *testing.T) {
		assert.Equal(t, 5.0, geom.Pt(0, 0).Distance(geom.Pt(3, 4)))
	})

	t.Run("normalize zero", func(t *testing.T) {
		assert.Equal(t, geom.Pt(0, 0), geom.Pt(0, 0).Normalize())
	})

	t.Run("angle", func(t *testing.T) {
		assert.InDelta(t, 90.0, geom.Pt(0, 1).Angle(), 1e-9)
		assert.InDelta(t, 180.0, geom.Pt(-1, 0).Angle(), 1e-9)
	})

	t.Run("rotate about origin", func(t *testing.T) {
		p := geom.Pt(10, 0).Rotate(geom.Pt(0, 0), 90)
		assert.InDelta(t, 0, p.X, 1e-9)
		assert.InDelta(t, 10, p.Y, 1e-9)

		p = geom.Pt(20, 10).Rotate(geom.Pt(10, 10), 180)
		assert.InDelta(t, 0, p.X, 1e-9)
		assert.InDelta(t, 10, p.Y, 1e-9)
	})
}

func TestRect(t *testing.T) {
	r := geom.NewRect(10, 20, 30, 40)

	assert.Equal(t, 40.0, r.MaxX())
	assert.Equal(t, 60.0, r.MaxY())
	assert.Equal(t, geom.Pt(25, 40), r.Center())

	t.Run("contains border", func(t *testing.T) {
		assert.True(t, r.Contains(geom.Pt(10, 20)))
		assert.True(t, r.Contains(geom.Pt(40, 60)))
		assert.False(t, r.Contains(geom.Pt(40.1, 60)))
	})

	t.Run("touching rectangles intersect", func(t *testing.T) {
		assert.True(t, r.Intersects(geom.NewRect(40, 20, 5, 5)))
		assert.False(t, r.Intersects(geom.NewRect(40.5, 20, 5, 5)))
	})

	t.Run("expand", func(t *testing.T) {
		assert.Equal(t, geom.NewRect(5, 18, 40, 44), r.Expand(5, 2))
	})

	t.Run("from points", func(t *testing.T) {
		assert.Equal(t, geom.NewRect(1, 2, 4, 6), geom.RectFromPoints(geom.Pt(5, 2), geom.Pt(1, 8)))
	})
}

func TestOverlaps(t *testing.T) {
	t.Run("axis aligned", func(t *testing.T) {
		a := geom.Corners(geom.NewRect(0, 0, 20, 20), geom.Pt(0, 0), 0)
		b := geom.Corners(geom.NewRect(10, 0, 20, 20), geom.Pt(10, 0), 0)
		c := geom.Corners(geom.NewRect(50, 0, 20, 20), geom.Pt(50, 0), 0)

		assert.True(t, geom.Overlaps(a, b))
		assert.True(t, geom.Overlaps(b, a))
		assert.False(t, geom.Overlaps(a, c))
	})

	t.Run("rotated square reaches neighbour", func(t *testing.T) {
		// a 20x20 square rotated 45 degrees about its centre spans
		// 10*sqrt(2) from the centre along the x axis
		a := geom.Corners(geom.NewRect(0, 0, 20, 20), geom.Pt(10, 10), 45)
		reach := 10 + 10*math.Sqrt2

		near := geom.Corners(geom.NewRect(reach-1, 9, 5, 2), geom.Pt(0, 0), 0)
		far := geom.Corners(geom.NewRect(reach+1, 9, 5, 2), geom.Pt(0, 0), 0)

		assert.True(t, geom.Overlaps(a, near))
		assert.False(t, geom.Overlaps(a, far))
	})

	t.Run("rotation separates corners", func(t *testing.T) {
		// unrotated these boxes would touch corner to corner
		a := geom.Corners(geom.NewRect(0, 0, 10, 10), geom.Pt(5, 5), 45)
		b := geom.Corners(geom.NewRect(10, 10, 10, 10), geom.Pt(15, 15), 45)

		assert.False(t, geom.Overlaps(a, b))
	})
}
