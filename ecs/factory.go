package ecs

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// SpawnFunc builds an entity from spawn data. The entity must not be added
// to a world; Spawn does that.
type SpawnFunc func(data *SpawnData) (*Entity, error)

// EntityFactory offers spawn functions keyed by spawn name. A key may list
// several comma separated aliases for the same function.
type EntityFactory interface {
	Spawners() map[string]SpawnFunc
}

// SpawnMap is the simplest EntityFactory.
type SpawnMap map[string]SpawnFunc

func (m SpawnMap) Spawners() map[string]SpawnFunc { return m }

type factoryEntry struct {
	factory EntityFactory
	names   []string
}

// AddEntityFactory registers every spawn name of f. Names must be unique
// across all registered factories; on a duplicate nothing is registered.
func (w *GameWorld) AddEntityFactory(f EntityFactory) error {
	if f == nil {
		panic("nil entity factory")
	}

	staged := make(map[string]SpawnFunc)
	var names []string
	spawners := f.Spawners()
	for _, key := range slices.Sorted(maps.Keys(spawners)) {
		for _, name := range strings.Split(key, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, dup := w.spawners[name]; dup {
				return eris.Wrapf(ErrDuplicateSpawn, "%q", name)
			}
			if _, dup := staged[name]; dup {
				return eris.Wrapf(ErrDuplicateSpawn, "%q", name)
			}
			staged[name] = spawners[key]
			names = append(names, name)
		}
	}

	maps.Copy(w.spawners, staged)
	w.factories = append(w.factories, factoryEntry{factory: f, names: names})
	w.log.Debug("registered entity factory", zap.Strings("spawns", names))
	return nil
}

// RemoveEntityFactory unregisters f and all of its spawn names.
func (w *GameWorld) RemoveEntityFactory(f EntityFactory) {
	w.factories = slices.DeleteFunc(w.factories, func(entry factoryEntry) bool {
		if !sameFactory(entry.factory, f) {
			return false
		}
		for _, name := range entry.names {
			delete(w.spawners, name)
		}
		return true
	})
}

// sameFactory compares factories by identity. Map and func backed factories
// are not comparable with ==.
func sameFactory(a, b EntityFactory) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Slice:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}

// SpawnNames returns the registered spawn names in sorted order.
func (w *GameWorld) SpawnNames() []string {
	return slices.Sorted(maps.Keys(w.spawners))
}

// Create builds an entity with the spawn function registered under name
// without adding it to the world. When data has no "type" property, name is
// stored under it.
func (w *GameWorld) Create(name string, data *SpawnData) (*Entity, error) {
	if len(w.factories) == 0 {
		return nil, eris.Wrapf(ErrNoFactory, "spawn %q", name)
	}
	fn, ok := w.spawners[name]
	if !ok {
		return nil, eris.Wrapf(ErrUnknownSpawn, "%q", name)
	}

	if data == nil {
		data = NewSpawnData(0, 0)
	}
	if !data.Has("type") {
		data.Set("type", name)
	}

	e, err := fn(data)
	if err != nil {
		return nil, eris.Wrapf(err, "spawn %q", name)
	}
	if e == nil {
		return nil, eris.Errorf("spawn %q returned no entity", name)
	}
	return e, nil
}

// Spawn creates the entity registered under name and adds it to the world.
func (w *GameWorld) Spawn(name string, data *SpawnData) (*Entity, error) {
	e, err := w.Create(name, data)
	if err != nil {
		return nil, err
	}
	if err := w.AddEntity(e); err != nil {
		return nil, eris.Wrapf(err, "spawn %q", name)
	}
	return e, nil
}

// SpawnAt spawns name at (x, y) with no extra properties.
func (w *GameWorld) SpawnAt(name string, x, y float64) (*Entity, error) {
	return w.Spawn(name, NewSpawnData(x, y))
}
