package ecs

// Level is a set of entities installed together with GameWorld.SetLevel.
type Level struct {
	Name       string
	Width      float64
	Height     float64
	Entities   []*Entity
	Properties PropertyMap
}

// NewLevel groups entities under a name and world size.
func NewLevel(name string, width, height float64, entities ...*Entity) *Level {
	return &Level{Name: name, Width: width, Height: height, Entities: entities}
}
