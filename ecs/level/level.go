// Package level loads levels described in YAML and turns them into
// ecs.Level values by spawning each entry through the world's factories.
//
// A level file looks like:
//
//	name: arena
//	width: 800
//	height: 600
//	properties:
//	  music: battle
//	entities:
//	  - spawn: player
//	    x: 100
//	    y: 300
//	  - spawn: enemy
//	    x: 600
//	    y: 300
//	    properties:
//	      hp: 5
package level

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/plus3/gameworld/ecs"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

var ErrInvalidLevel = eris.New("invalid level")

// Creator builds detached entities by spawn name. *ecs.GameWorld satisfies it.
type Creator interface {
	Create(name string, data *ecs.SpawnData) (*ecs.Entity, error)
}

// File is the YAML form of a level.
type File struct {
	Name       string         `yaml:"name"`
	Width      float64        `yaml:"width"`
	Height     float64        `yaml:"height"`
	Properties map[string]any `yaml:"properties,omitempty"`
	Entities   []EntityEntry  `yaml:"entities"`
}

// EntityEntry places one spawned entity.
type EntityEntry struct {
	Spawn      string         `yaml:"spawn"`
	X          float64        `yaml:"x"`
	Y          float64        `yaml:"y"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

// Decode parses data without spawning anything.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "decode level")
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if f.Width < 0 || f.Height < 0 {
		return eris.Wrapf(ErrInvalidLevel, "negative size %gx%g", f.Width, f.Height)
	}
	for i, entry := range f.Entities {
		if entry.Spawn == "" {
			return eris.Wrapf(ErrInvalidLevel, "entity %d has no spawn name", i)
		}
	}
	return nil
}

// Build spawns every entry with c. Entities are spawned in file order and
// property keys are applied in sorted order.
func (f *File) Build(c Creator) (*ecs.Level, error) {
	lvl := ecs.NewLevel(f.Name, f.Width, f.Height)
	for _, k := range sortedKeys(f.Properties) {
		lvl.Properties.Set(k, f.Properties[k])
	}

	for i, entry := range f.Entities {
		data := ecs.NewSpawnData(entry.X, entry.Y)
		for _, k := range sortedKeys(entry.Properties) {
			data.Set(k, entry.Properties[k])
		}

		e, err := c.Create(entry.Spawn, data)
		if err != nil {
			return nil, eris.Wrapf(err, "level %q entity %d", f.Name, i)
		}
		lvl.Entities = append(lvl.Entities, e)
	}
	return lvl, nil
}

// Parse decodes data and builds the level with c.
func Parse(data []byte, c Creator) (*ecs.Level, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return f.Build(c)
}

// LoadFile reads and builds the level stored at path.
func LoadFile(path string, c Creator) (*ecs.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level file: %w", err)
	}
	return Parse(data, c)
}

// Encode renders f back to YAML.
func Encode(f *File) ([]byte, error) {
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, eris.Wrap(err, "encode level")
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
