package ecs

import "github.com/plus3/gameworld/geom"

// SpawnData carries the initial position and the free-form properties handed
// to a factory spawn function.
type SpawnData struct {
	PropertyMap
	X, Y float64
}

// NewSpawnData returns spawn data positioned at x, y.
func NewSpawnData(x, y float64) *SpawnData {
	return &SpawnData{X: x, Y: y}
}

// Put stores a property and returns d for chaining.
func (d *SpawnData) Put(key string, value any) *SpawnData {
	d.Set(key, value)
	return d
}

func (d *SpawnData) Position() geom.Point2D {
	return geom.Pt(d.X, d.Y)
}
