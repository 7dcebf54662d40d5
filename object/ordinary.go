package object

import (
	"context"
	"fmt"
	"strings"
)

var _ Object = (*Ordinary)(nil)

// property is the resolved storage form of one own property.
type property struct {
	value        Value
	getter       Value
	setter       Value
	writable     bool
	enumerable   bool
	configurable bool
	accessor     bool
}

func (p *property) descriptor() *PropertyDescriptor {
	if p.accessor {
		return &PropertyDescriptor{
			Getter:       p.getter,
			Setter:       p.setter,
			Enumerable:   FlagFromBool(p.enumerable),
			Configurable: FlagFromBool(p.configurable),
		}
	}
	return &PropertyDescriptor{
		Value:        p.value,
		Writable:     FlagFromBool(p.writable),
		Enumerable:   FlagFromBool(p.enumerable),
		Configurable: FlagFromBool(p.configurable),
	}
}

// Ordinary is the plain object of the model: insertion-ordered own
// properties, a prototype link, and an extensibility flag.
type Ordinary struct {
	properties map[string]*property
	keys       []string
	proto      Object
	extensible bool
}

func NewObject() *Ordinary {
	return &Ordinary{
		properties: map[string]*property{},
		extensible: true,
	}
}

func NewObjectWithPrototype(proto Object) *Ordinary {
	obj := NewObject()
	obj.proto = proto
	return obj
}

func (o *Ordinary) Type() Type {
	return OBJECT
}

func (o *Ordinary) Inspect() string {
	var out strings.Builder
	out.WriteString("object(")
	for i, key := range o.keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(key)
	}
	out.WriteString(")")
	return out.String()
}

func (o *Ordinary) String() string {
	return o.Inspect()
}

// Interface returns the object's own enumerable data properties as a Go map.
func (o *Ordinary) Interface() interface{} {
	result := map[string]interface{}{}
	for key, prop := range o.properties {
		if prop.accessor || !prop.enumerable {
			continue
		}
		result[key] = prop.value.Interface()
	}
	return result
}

// Equals compares by identity. Two ordinary objects with identical contents
// are still distinct values.
func (o *Ordinary) Equals(other Value) bool {
	otherObj, ok := other.(*Ordinary)
	if !ok {
		return false
	}
	return o == otherObj
}

func (o *Ordinary) IsTruthy() bool {
	return true
}

func (o *Ordinary) Prototype(ctx context.Context) (Object, error) {
	return o.proto, nil
}

func (o *Ordinary) SetPrototype(ctx context.Context, proto Object) (bool, error) {
	if SameObject(o.proto, proto) {
		return true, nil
	}
	if !o.extensible {
		return false, nil
	}
	// Reject prototype cycles through ordinary objects.
	for p := proto; p != nil; {
		if SameObject(p, o) {
			return false, nil
		}
		ord, ok := p.(*Ordinary)
		if !ok {
			break
		}
		p = ord.proto
	}
	o.proto = proto
	return true, nil
}

func (o *Ordinary) IsExtensible(ctx context.Context) (bool, error) {
	return o.extensible, nil
}

func (o *Ordinary) PreventExtensions(ctx context.Context) (bool, error) {
	o.extensible = false
	return true, nil
}

func (o *Ordinary) GetOwnProperty(ctx context.Context, key string) (*PropertyDescriptor, error) {
	prop, ok := o.properties[key]
	if !ok {
		return nil, nil
	}
	return prop.descriptor(), nil
}

func (o *Ordinary) DefineOwnProperty(ctx context.Context, key string, desc PropertyDescriptor) (bool, error) {
	existing, ok := o.properties[key]
	if !ok {
		if !o.extensible {
			return false, nil
		}
		desc.Complete()
		o.properties[key] = propertyFromDescriptor(&desc)
		o.keys = append(o.keys, key)
		return true, nil
	}
	if !existing.configurable {
		if desc.Configurable == FlagTrue {
			return false, nil
		}
		if desc.Enumerable.IsSet() && desc.Enumerable.Bool() != existing.enumerable {
			return false, nil
		}
		if desc.IsGeneric() {
			return true, nil
		}
		if desc.IsAccessor() != existing.accessor {
			return false, nil
		}
		if existing.accessor {
			if desc.Getter != nil && !valueEquals(desc.Getter, existing.getter) {
				return false, nil
			}
			if desc.Setter != nil && !valueEquals(desc.Setter, existing.setter) {
				return false, nil
			}
		} else if !existing.writable {
			if desc.Writable == FlagTrue {
				return false, nil
			}
			if desc.Value != nil && !valueEquals(desc.Value, existing.value) {
				return false, nil
			}
		}
	}
	applyDescriptor(existing, &desc)
	return true, nil
}

func (o *Ordinary) Has(ctx context.Context, key string) (bool, error) {
	if _, ok := o.properties[key]; ok {
		return true, nil
	}
	if o.proto != nil {
		return o.proto.Has(ctx, key)
	}
	return false, nil
}

func (o *Ordinary) Get(ctx context.Context, key string, receiver Value) (Value, error) {
	prop, ok := o.properties[key]
	if !ok {
		if o.proto != nil {
			return o.proto.Get(ctx, key, receiver)
		}
		return Nil, nil
	}
	if prop.accessor {
		getter, ok := AsCallable(prop.getter)
		if !ok {
			return Nil, nil
		}
		return getter.Call(ctx, receiver)
	}
	return prop.value, nil
}

func (o *Ordinary) Set(ctx context.Context, key string, value Value, receiver Value) (bool, error) {
	if prop, ok := o.properties[key]; ok {
		if prop.accessor {
			setter, ok := AsCallable(prop.setter)
			if !ok {
				return false, nil
			}
			if _, err := setter.Call(ctx, receiver, value); err != nil {
				return false, err
			}
			return true, nil
		}
		if !prop.writable {
			return false, nil
		}
		prop.value = value
		return true, nil
	}
	if o.proto != nil {
		desc, err := chainLookup(ctx, o.proto, key)
		if err != nil {
			return false, err
		}
		if desc != nil {
			if desc.IsAccessor() {
				setter, ok := AsCallable(desc.Setter)
				if !ok {
					return false, nil
				}
				if _, err := setter.Call(ctx, receiver, value); err != nil {
					return false, err
				}
				return true, nil
			}
			if !desc.Writable.Bool() {
				return false, nil
			}
		}
	}
	return o.DefineOwnProperty(ctx, key, PropertyDescriptor{
		Value:        value,
		Writable:     FlagTrue,
		Enumerable:   FlagTrue,
		Configurable: FlagTrue,
	})
}

func (o *Ordinary) Delete(ctx context.Context, key string) (bool, error) {
	prop, ok := o.properties[key]
	if !ok {
		return true, nil
	}
	if !prop.configurable {
		return false, nil
	}
	delete(o.properties, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true, nil
}

func (o *Ordinary) OwnKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys, nil
}

// Put defines or overwrites a writable, enumerable, configurable data
// property. It is a convenience for building objects from Go code and
// bypasses setters.
func (o *Ordinary) Put(key string, value Value) error {
	ok, err := o.DefineOwnProperty(context.Background(), key, PropertyDescriptor{
		Value:        value,
		Writable:     FlagTrue,
		Enumerable:   FlagTrue,
		Configurable: FlagTrue,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("cannot define property %q", key)
	}
	return nil
}

// Freeze makes every own property non-configurable (and data properties
// non-writable) and prevents extensions.
func (o *Ordinary) Freeze() {
	for _, prop := range o.properties {
		prop.configurable = false
		if !prop.accessor {
			prop.writable = false
		}
	}
	o.extensible = false
}

func propertyFromDescriptor(desc *PropertyDescriptor) *property {
	if desc.IsAccessor() {
		return &property{
			getter:       desc.Getter,
			setter:       desc.Setter,
			enumerable:   desc.Enumerable.Bool(),
			configurable: desc.Configurable.Bool(),
			accessor:     true,
		}
	}
	return &property{
		value:        desc.Value,
		writable:     desc.Writable.Bool(),
		enumerable:   desc.Enumerable.Bool(),
		configurable: desc.Configurable.Bool(),
	}
}

// applyDescriptor merges the specified fields of desc into an existing
// property, converting between data and accessor kinds when needed.
func applyDescriptor(prop *property, desc *PropertyDescriptor) {
	if desc.IsAccessor() {
		if !prop.accessor {
			prop.accessor = true
			prop.value = nil
			prop.writable = false
			prop.getter = Nil
			prop.setter = Nil
		}
		if desc.Getter != nil {
			prop.getter = desc.Getter
		}
		if desc.Setter != nil {
			prop.setter = desc.Setter
		}
	} else if desc.IsData() {
		if prop.accessor {
			prop.accessor = false
			prop.getter = nil
			prop.setter = nil
			prop.value = Nil
		}
		if desc.Value != nil {
			prop.value = desc.Value
		}
		if desc.Writable.IsSet() {
			prop.writable = desc.Writable.Bool()
		}
	}
	if desc.Enumerable.IsSet() {
		prop.enumerable = desc.Enumerable.Bool()
	}
	if desc.Configurable.IsSet() {
		prop.configurable = desc.Configurable.Bool()
	}
}

// SameObject reports whether two objects are the same object, treating nil
// consistently. Object equality is identity.
func SameObject(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// chainLookup walks the prototype chain starting at obj and returns the
// first own property descriptor found for the key.
func chainLookup(ctx context.Context, obj Object, key string) (*PropertyDescriptor, error) {
	for obj != nil {
		desc, err := obj.GetOwnProperty(ctx, key)
		if err != nil {
			return nil, err
		}
		if desc != nil {
			return desc, nil
		}
		proto, err := obj.Prototype(ctx)
		if err != nil {
			return nil, err
		}
		obj = proto
	}
	return nil, nil
}
