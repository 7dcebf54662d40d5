package object

// Flag is a tri-state boolean used for property descriptor attributes, which
// distinguish "not specified" from an explicit true or false.
type Flag int

const (
	FlagNotSet Flag = iota
	FlagFalse
	FlagTrue
)

func (f Flag) Bool() bool {
	return f == FlagTrue
}

func (f Flag) IsSet() bool {
	return f != FlagNotSet
}

func FlagFromBool(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// PropertyDescriptor describes one own property of an object. A descriptor
// may be partial (unspecified fields) when supplied to DefineOwnProperty;
// descriptors returned by GetOwnProperty are always complete.
//
// A nil Value/Getter/Setter field means the field was not specified, which is
// distinct from an explicit Nil value.
type PropertyDescriptor struct {
	Value Value

	Writable, Enumerable, Configurable Flag

	Getter, Setter Value
}

// IsAccessor reports whether the descriptor specifies a getter or setter.
func (d *PropertyDescriptor) IsAccessor() bool {
	return d.Getter != nil || d.Setter != nil
}

// IsData reports whether the descriptor specifies a value or writability.
func (d *PropertyDescriptor) IsData() bool {
	return d.Value != nil || d.Writable.IsSet()
}

// IsGeneric reports whether the descriptor specifies neither data nor
// accessor fields.
func (d *PropertyDescriptor) IsGeneric() bool {
	return !d.IsData() && !d.IsAccessor()
}

// HasGetter reports whether the descriptor carries a usable getter: a getter
// field that is present and not nil-valued.
func (d *PropertyDescriptor) HasGetter() bool {
	if d.Getter == nil {
		return false
	}
	_, ok := d.Getter.(*NilType)
	return !ok
}

// HasSetter reports whether the descriptor carries a usable setter.
func (d *PropertyDescriptor) HasSetter() bool {
	if d.Setter == nil {
		return false
	}
	_, ok := d.Setter.(*NilType)
	return !ok
}

// Complete fills unspecified fields with their defaults: Nil value, false
// attributes, nil-valued accessors. Accessor descriptors gain no data fields
// and vice versa.
func (d *PropertyDescriptor) Complete() {
	if d.IsAccessor() {
		if d.Getter == nil {
			d.Getter = Nil
		}
		if d.Setter == nil {
			d.Setter = Nil
		}
	} else {
		if d.Value == nil {
			d.Value = Nil
		}
		if !d.Writable.IsSet() {
			d.Writable = FlagFalse
		}
	}
	if !d.Enumerable.IsSet() {
		d.Enumerable = FlagFalse
	}
	if !d.Configurable.IsSet() {
		d.Configurable = FlagFalse
	}
}

// ToMap converts the descriptor to a map value, the form in which
// descriptors are handed to and returned from traps. Only specified fields
// are included.
func (d *PropertyDescriptor) ToMap() *Map {
	m := NewMap(nil)
	if d.Value != nil {
		m.Set("value", d.Value)
	}
	if d.Writable.IsSet() {
		m.Set("writable", NewBool(d.Writable.Bool()))
	}
	if d.Getter != nil {
		m.Set("get", d.Getter)
	}
	if d.Setter != nil {
		m.Set("set", d.Setter)
	}
	if d.Enumerable.IsSet() {
		m.Set("enumerable", NewBool(d.Enumerable.Bool()))
	}
	if d.Configurable.IsSet() {
		m.Set("configurable", NewBool(d.Configurable.Bool()))
	}
	return m
}

// DescriptorFromValue converts a map value back into a property descriptor.
// Getter and setter entries must be callable or nil. A descriptor may not
// specify both data and accessor fields.
func DescriptorFromValue(v Value) (*PropertyDescriptor, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, TypeConstraintErrorf("expected a property descriptor map (%s given)", v.Type())
	}
	desc := &PropertyDescriptor{}
	if value, ok := m.GetWithOk("value"); ok {
		desc.Value = value
	}
	if w, ok := m.GetWithOk("writable"); ok {
		desc.Writable = FlagFromBool(w.IsTruthy())
	}
	if e, ok := m.GetWithOk("enumerable"); ok {
		desc.Enumerable = FlagFromBool(e.IsTruthy())
	}
	if c, ok := m.GetWithOk("configurable"); ok {
		desc.Configurable = FlagFromBool(c.IsTruthy())
	}
	if getter, ok := m.GetWithOk("get"); ok {
		if _, isNil := getter.(*NilType); !isNil {
			if _, isCallable := AsCallable(getter); !isCallable {
				return nil, TypeConstraintErrorf("getter is not callable (%s given)", getter.Type())
			}
		}
		desc.Getter = getter
	}
	if setter, ok := m.GetWithOk("set"); ok {
		if _, isNil := setter.(*NilType); !isNil {
			if _, isCallable := AsCallable(setter); !isCallable {
				return nil, TypeConstraintErrorf("setter is not callable (%s given)", setter.Type())
			}
		}
		desc.Setter = setter
	}
	if desc.IsAccessor() && (desc.Value != nil || desc.Writable.IsSet()) {
		return nil, TypeConstraintErrorf("descriptor specifies both accessor and data fields")
	}
	return desc, nil
}

// valueEquals compares two possibly-unspecified descriptor values, treating
// an unspecified value as Nil.
func valueEquals(a, b Value) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	return a.Equals(b)
}
