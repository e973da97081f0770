package ecs

import (
	"iter"
	"slices"
)

// PropertyMap is an ordered string-keyed bag of values. The zero value is
// ready to use.
type PropertyMap struct {
	keys   []string
	values map[string]any
}

// NewPropertyMap returns an empty map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// Set stores value under key. A new key is appended to the iteration order.
func (m *PropertyMap) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the raw value stored under key.
func (m *PropertyMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *PropertyMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *PropertyMap) Remove(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

func (m *PropertyMap) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *PropertyMap) Keys() []string {
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m *PropertyMap) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *PropertyMap) Clear() {
	m.keys = nil
	m.values = nil
}

// Merge copies every entry of other into m.
func (m *PropertyMap) Merge(other *PropertyMap) {
	if other == nil {
		return
	}
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// Copy returns a shallow copy of m.
func (m *PropertyMap) Copy() *PropertyMap {
	cp := &PropertyMap{}
	cp.Merge(m)
	return cp
}

// Float64 returns the value under key converted from any Go numeric type.
func (m *PropertyMap) Float64(key string) (float64, bool) {
	switch v := m.values[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// Int returns the value under key. Floating point values are truncated.
func (m *PropertyMap) Int(key string) (int, bool) {
	switch v := m.values[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func (m *PropertyMap) Bool(key string) (bool, bool) {
	v, ok := m.values[key].(bool)
	return v, ok
}

func (m *PropertyMap) Str(key string) (string, bool) {
	v, ok := m.values[key].(string)
	return v, ok
}

// PropertyValue returns the value under key if it holds a T.
func PropertyValue[T any](m *PropertyMap, key string) (T, bool) {
	v, ok := m.values[key].(T)
	return v, ok
}
