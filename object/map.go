package object

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Map wraps a Go map of string keys to values and implements the Value
// interface. Property descriptors cross the trap boundary in this form.
type Map struct {
	items map[string]Value
}

func (m *Map) Type() Type {
	return MAP
}

func (m *Map) Value() map[string]Value {
	return m.items
}

func (m *Map) Len() int {
	return len(m.items)
}

// Keys returns the map keys as a sorted slice of strings.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) GetWithOk(key string) (Value, bool) {
	value, ok := m.items[key]
	return value, ok
}

func (m *Map) Get(key string) Value {
	value, ok := m.items[key]
	if !ok {
		return Nil
	}
	return value
}

func (m *Map) Set(key string, value Value) {
	m.items[key] = value
}

func (m *Map) Delete(key string) {
	delete(m.items, key)
}

func (m *Map) Inspect() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, key := range m.Keys() {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(key)
		out.WriteString(": ")
		out.WriteString(m.items[key].Inspect())
	}
	out.WriteString("}")
	return out.String()
}

func (m *Map) String() string {
	return m.Inspect()
}

func (m *Map) Interface() interface{} {
	result := make(map[string]interface{}, len(m.items))
	for k, v := range m.items {
		result[k] = v.Interface()
	}
	return result
}

func (m *Map) Equals(other Value) bool {
	otherMap, ok := other.(*Map)
	if !ok {
		return false
	}
	if len(m.items) != len(otherMap.items) {
		return false
	}
	for k, v := range m.items {
		otherValue, ok := otherMap.items[k]
		if !ok || !v.Equals(otherValue) {
			return false
		}
	}
	return true
}

func (m *Map) IsTruthy() bool {
	return len(m.items) > 0
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.items)
}

func NewMap(items map[string]Value) *Map {
	if items == nil {
		items = map[string]Value{}
	}
	return &Map{items: items}
}
