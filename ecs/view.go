package ecs

import (
	"iter"
	"reflect"
	"unsafe"

	"github.com/rotisserie/eris"
)

var componentInterface = reflect.TypeFor[Component]()

// iface is the runtime layout of a non-empty interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// View matches entities holding a combination of components. The type T is
// a struct whose fields are component pointers:
//
//	ecs.NewView[struct {
//		*Velocity
//		Health *Health `ecs:"optional"`
//	}](world)
//
// Embedded fields are always required. Named fields can be marked optional
// with the `ecs:"optional"` tag and are nil when the component is absent.
type View[T any] struct {
	world       *GameWorld
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
}

// NewView creates a view over the active entities of world.
func NewView[T any](world *GameWorld) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{world: world}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Pointer || !field.Type.Implements(componentInterface) {
			panic("View struct fields must be component pointer types: " + field.Name)
		}

		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		v.types = append(v.types, field.Type)
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
	return v
}

// Matches reports whether e holds every required component of the view.
func (v *View[T]) Matches(e *Entity) bool {
	for i, t := range v.types {
		if !v.optional[i] && !e.HasComponent(t) {
			return false
		}
	}
	return true
}

// Fill points the fields of ptr at the components of e. It returns false
// if e is missing a required component.
func (v *View[T]) Fill(e *Entity, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, t := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		component, ok := e.ComponentOptional(t)
		if !ok {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

// Get returns the populated view struct for e, or nil if e does not match.
func (v *View[T]) Get(e *Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// Iter yields every active entity that matches, with its view struct.
func (v *View[T]) Iter() iter.Seq2[*Entity, T] {
	return func(yield func(*Entity, T) bool) {
		var result T
		for _, e := range v.world.entities {
			if !e.IsActive() || !v.Fill(e, &result) {
				continue
			}
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values yields only the view structs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn adds a new entity to the world holding the non-nil components of data.
func (v *View[T]) Spawn(data T) (*Entity, error) {
	structPtr := unsafe.Pointer(&data)

	e := NewEntity()
	for i, t := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)

		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		component := reflect.NewAt(t.Elem(), componentPtr).Interface().(Component)
		if err := e.AddComponent(component); err != nil {
			return nil, eris.Wrap(err, "view spawn")
		}
	}

	if err := v.world.AddEntity(e); err != nil {
		return nil, err
	}
	return e, nil
}
