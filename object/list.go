package object

import (
	"bytes"
	"encoding/json"
)

// List wraps a slice of values and implements the Value interface. Lists are
// how key sequences cross the trap boundary: an ownKeys trap returns a list
// of strings.
type List struct {
	items []Value
}

func (ls *List) Type() Type {
	return LIST
}

func (ls *List) Value() []Value {
	return ls.items
}

func (ls *List) Len() int {
	return len(ls.items)
}

func (ls *List) Append(item Value) {
	ls.items = append(ls.items, item)
}

func (ls *List) Inspect() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, item := range ls.items {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(item.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

func (ls *List) String() string {
	return ls.Inspect()
}

func (ls *List) Interface() interface{} {
	items := make([]interface{}, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Interface())
	}
	return items
}

func (ls *List) Equals(other Value) bool {
	otherList, ok := other.(*List)
	if !ok {
		return false
	}
	if len(ls.items) != len(otherList.items) {
		return false
	}
	for i, item := range ls.items {
		if !item.Equals(otherList.items[i]) {
			return false
		}
	}
	return true
}

func (ls *List) IsTruthy() bool {
	return len(ls.items) > 0
}

func (ls *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(ls.items)
}

// Strings returns the list items as Go strings. Fails if any item is not a
// string.
func (ls *List) Strings() ([]string, error) {
	out := make([]string, 0, len(ls.items))
	for _, item := range ls.items {
		s, ok := item.(*String)
		if !ok {
			return nil, TypeConstraintErrorf("expected a list of strings (%s given)", item.Type())
		}
		out = append(out, s.value)
	}
	return out, nil
}

func NewList(items []Value) *List {
	return &List{items: items}
}

// NewStringList builds a list of string values from Go strings.
func NewStringList(items []string) *List {
	values := make([]Value, 0, len(items))
	for _, item := range items {
		values = append(values, NewString(item))
	}
	return &List{items: values}
}
