package debugui

import (
	"reflect"
	"sync"

	"github.com/plus3/gameworld/ecs"
)

var componentBaseType = reflect.TypeFor[ecs.ComponentBase]()

// FieldInfo describes one exported field the inspector can show.
type FieldInfo struct {
	Name      string
	Type      reflect.Type // element type when IsPointer
	Index     int
	IsPointer bool
}

// ReflectionCache remembers the inspectable fields of component structs.
// The embedded ecs.ComponentBase and unexported fields are left out.
type ReflectionCache struct {
	fields sync.Map // reflect.Type -> []FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{}
}

// GetFields returns the fields of struct type t, or of the struct t points to.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := rc.fields.Load(t); ok {
		return cached.([]FieldInfo)
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() || (field.Anonymous && field.Type == componentBaseType) {
				continue
			}

			info := FieldInfo{Name: field.Name, Type: field.Type, Index: i}
			if field.Type.Kind() == reflect.Pointer {
				info.Type = field.Type.Elem()
				info.IsPointer = true
			}
			fields = append(fields, info)
		}
	}

	actual, _ := rc.fields.LoadOrStore(t, fields)
	return actual.([]FieldInfo)
}

var globalReflectionCache = NewReflectionCache()
