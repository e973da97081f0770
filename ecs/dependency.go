package ecs

import "reflect"

// Dependency is a slot on a component that its entity fills with a sibling
// component when the component is attached. Components expose their slots by
// implementing DependencyHolder:
//
//	func (f *Follow) Dependencies() []ecs.Dependency {
//		return []ecs.Dependency{ecs.Inject(&f.transform)}
//	}
type Dependency struct {
	typ      reflect.Type
	required bool
	accepts  func(Component) bool
	assign   func(Component)
}

// DependencyHolder is implemented by components with dependency slots.
type DependencyHolder interface {
	Dependencies() []Dependency
}

// Inject declares a slot that must be resolved for the component to be
// added. T may be a concrete component type or an interface satisfied by a
// sibling component.
func Inject[T any](dst *T) Dependency {
	return newDependency(dst, true)
}

// InjectOptional declares a slot that is left untouched when no sibling matches.
func InjectOptional[T any](dst *T) Dependency {
	return newDependency(dst, false)
}

func newDependency[T any](dst *T, required bool) Dependency {
	return Dependency{
		typ:      reflect.TypeFor[T](),
		required: required,
		accepts: func(c Component) bool {
			_, ok := any(c).(T)
			return ok
		},
		assign: func(c Component) {
			*dst = any(c).(T)
		},
	}
}

// Type returns the slot's declared type.
func (d Dependency) Type() reflect.Type { return d.typ }

// Required reports whether the slot must be resolved.
func (d Dependency) Required() bool { return d.required }
