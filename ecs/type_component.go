package ecs

import (
	"fmt"
	"reflect"
)

// TypeComponent classifies an entity with an opaque comparable tag, usually
// a value of a user defined enum type.
type TypeComponent struct {
	ComponentBase
	value any
}

// NewTypeComponent tags an entity with value.
func NewTypeComponent(value any) *TypeComponent {
	t := &TypeComponent{}
	t.SetValue(value)
	return t
}

func (*TypeComponent) coreComponent() {}

func (t *TypeComponent) Value() any { return t.value }

// SetValue panics if value is not comparable.
func (t *TypeComponent) SetValue(value any) {
	if value != nil && !reflect.TypeOf(value).Comparable() {
		panic(fmt.Sprintf("entity type %T is not comparable", value))
	}
	t.value = value
}

// Is reports whether the tag equals value.
func (t *TypeComponent) Is(value any) bool {
	if value != nil && !reflect.TypeOf(value).Comparable() {
		return false
	}
	return t.value == value
}

func (t *TypeComponent) String() string {
	return fmt.Sprint(t.value)
}

func (t *TypeComponent) Copy() Component {
	return &TypeComponent{value: t.value}
}
