package object

import (
	"context"
	"math"
	"sort"
)

// *****************************************************************************
// Type assertion helpers
// *****************************************************************************

func AsBool(v Value) (bool, error) {
	b, ok := v.(*Bool)
	if !ok {
		return false, TypeConstraintErrorf("expected a bool (%s given)", v.Type())
	}
	return b.value, nil
}

func AsString(v Value) (string, error) {
	s, ok := v.(*String)
	if !ok {
		return "", TypeConstraintErrorf("expected a string (%s given)", v.Type())
	}
	return s.value, nil
}

func AsInt(v Value) (int64, error) {
	i, ok := v.(*Int)
	if !ok {
		return 0, TypeConstraintErrorf("expected an integer (%s given)", v.Type())
	}
	return i.value, nil
}

func AsFloat(v Value) (float64, error) {
	switch v := v.(type) {
	case *Int:
		return float64(v.value), nil
	case *Float:
		return v.value, nil
	default:
		return 0.0, TypeConstraintErrorf("expected a number (%s given)", v.Type())
	}
}

func AsList(v Value) (*List, error) {
	list, ok := v.(*List)
	if !ok {
		return nil, TypeConstraintErrorf("expected a list (%s given)", v.Type())
	}
	return list, nil
}

func AsMap(v Value) (*Map, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, TypeConstraintErrorf("expected a map (%s given)", v.Type())
	}
	return m, nil
}

func AsObject(v Value) (Object, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, TypeConstraintErrorf("expected an object (%s given)", v.Type())
	}
	return obj, nil
}

// *****************************************************************************
// Go value conversion
// *****************************************************************************

// FromGoValue converts a native Go value (as produced by encoding/json) into
// a model value. Maps become ordinary objects with writable, enumerable,
// configurable data properties.
func FromGoValue(v interface{}) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Nil, nil
	case bool:
		return NewBool(v), nil
	case string:
		return NewString(v), nil
	case int:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case float64:
		// JSON numbers arrive as float64; preserve integral values as ints
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return NewInt(int64(v)), nil
		}
		return NewFloat(v), nil
	case []interface{}:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			value, err := FromGoValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return NewList(items), nil
	case map[string]interface{}:
		obj := NewObject()
		for _, key := range sortedMapKeys(v) {
			value, err := FromGoValue(v[key])
			if err != nil {
				return nil, err
			}
			if err := obj.Put(key, value); err != nil {
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, TypeConstraintErrorf("unsupported Go value of type %T", v)
	}
}

// ToGoValue converts a model value back to a native Go value. Objects become
// maps of their own enumerable data properties, resolved via the object's
// normal structural operations so proxies are honored.
func ToGoValue(ctx context.Context, v Value) (interface{}, error) {
	obj, ok := v.(Object)
	if !ok {
		return v.Interface(), nil
	}
	keys, err := obj.OwnKeys(ctx)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{}
	for _, key := range keys {
		desc, err := obj.GetOwnProperty(ctx, key)
		if err != nil {
			return nil, err
		}
		if desc == nil || !desc.Enumerable.Bool() {
			continue
		}
		value, err := obj.Get(ctx, key, obj)
		if err != nil {
			return nil, err
		}
		converted, err := ToGoValue(ctx, value)
		if err != nil {
			return nil, err
		}
		result[key] = converted
	}
	return result, nil
}

func sortedMapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
