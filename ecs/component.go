package ecs

import (
	"reflect"
	"strings"
	"weak"

	"github.com/rotisserie/eris"
)

// Component is a unit of behaviour attached to an Entity. Concrete components
// embed ComponentBase and override only the hooks they need:
//
//	type Spin struct {
//		ecs.ComponentBase
//		Speed float64
//	}
//
//	func (s *Spin) OnUpdate(tpf float64) {
//		s.Entity().Transform().RotateBy(s.Speed * tpf)
//	}
//
// An entity holds at most one component of each concrete type, and the type
// must be named so it can key lookups and serialized bundles.
type Component interface {
	// Entity returns the owning entity, or nil before the component is attached.
	Entity() *Entity
	OnAdded()
	OnUpdate(tpf float64)
	OnRemoved()
	IsPaused() bool
	Pause()
	Resume()

	base() *ComponentBase
}

// ComponentBase provides the bookkeeping every Component needs. It must be
// embedded by value.
type ComponentBase struct {
	entity weak.Pointer[Entity]
	paused bool
}

func (c *ComponentBase) Entity() *Entity { return c.entity.Value() }

func (c *ComponentBase) OnAdded() {}

func (c *ComponentBase) OnUpdate(tpf float64) {}

func (c *ComponentBase) OnRemoved() {}

func (c *ComponentBase) IsPaused() bool { return c.paused }

// Pause suppresses OnUpdate until Resume is called. The component stays attached.
func (c *ComponentBase) Pause() { c.paused = true }

func (c *ComponentBase) Resume() { c.paused = false }

func (c *ComponentBase) base() *ComponentBase { return c }

// Requirer is implemented by components that can only be added to an entity
// which already holds components of the returned types. A returned interface
// type is satisfied by any present component implementing it.
type Requirer interface {
	RequiredComponents() []reflect.Type
}

// Copyable components are transferred by Entity.Copy. Copy must return a new
// component with the same field values and no shared mutable state.
type Copyable interface {
	Component
	Copy() Component
}

// Serializable components take part in Entity.Save and Entity.Load.
type Serializable interface {
	Component
	Write(b *Bundle)
	Read(b *Bundle)
}

// coreComponent marks the four components every entity carries.
type coreComponent interface {
	coreComponent()
}

func isCore(c Component) bool {
	_, ok := c.(coreComponent)
	return ok
}

// TypeOf returns the key under which components of type T are stored.
//
//	ecs.TypeOf[*Spin]()
func TypeOf[T Component]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Types is a convenience for building RequiredComponents results.
func Types(components ...Component) []reflect.Type {
	types := make([]reflect.Type, len(components))
	for i, c := range components {
		types[i] = reflect.TypeOf(c)
	}
	return types
}

func componentType(c Component) (reflect.Type, error) {
	if c == nil {
		return nil, ErrNilComponent
	}

	t := reflect.TypeOf(c)
	v := reflect.ValueOf(c)
	if t.Kind() == reflect.Pointer && v.IsNil() {
		return nil, ErrNilComponent
	}

	named := t
	if named.Kind() == reflect.Pointer {
		named = named.Elem()
	}
	if named.Name() == "" {
		return nil, eris.Wrapf(ErrAnonymousComponent, "%s", t.String())
	}
	return t, nil
}

// typeName is the short name of a component type, used in diagnostics.
func typeName(t reflect.Type) string {
	return strings.TrimPrefix(t.String(), "*")
}

// bundleKey names the Save/Load bundle of a component type by its full
// import path, so equally named types from different packages stay apart.
func bundleKey(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}
