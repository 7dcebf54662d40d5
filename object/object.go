// Package object provides the object model used by the shadow proxy layer.
//
// Values are represented by the Value interface. Structured objects with
// property descriptors, a prototype link, and an extensibility flag implement
// the larger Object interface, which exposes the eleven structural operations
// of the model. Three Object implementations exist: *Ordinary (the plain
// object), *Builtin (a named Go function object), and *Proxy (the shadow
// proxy exotic object, which intercepts structural operations using traps
// captured from a handler at construction time).
//
// For external users, a Value is often type asserted to a specific type:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Int:
//		// do something with obj.Value()
//	}
package object

import (
	"context"
)

// Type of a value as a string.
type Type string

// Type constants
const (
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	FLOAT   Type = "float"
	INT     Type = "int"
	LIST    Type = "list"
	MAP     Type = "map"
	NIL     Type = "nil"
	OBJECT  Type = "object"
	PROXY   Type = "proxy"
	STRING  Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Value is the interface implemented by every value in the model.
type Value interface {
	// Type of the value.
	Type() Type

	// Inspect returns a string representation of the given value.
	Inspect() string

	// Interface converts the given value to a native Go value.
	Interface() interface{}

	// Equals returns true if the given value is equal to this value.
	// Objects are equal only to themselves.
	Equals(other Value) bool

	// IsTruthy returns true if the value is considered "truthy".
	IsTruthy() bool
}

// Object is the interface for values that participate in the structural
// object model: they own property descriptors, carry a prototype link, and
// have an extensibility flag. All operations take a context because they may
// run user code (accessors on ordinary objects, traps on proxies).
type Object interface {
	Value

	// Prototype returns the object's prototype, or nil if it has none.
	Prototype(ctx context.Context) (Object, error)

	// SetPrototype replaces the object's prototype. A nil proto clears it.
	// Returns false if the prototype could not be changed.
	SetPrototype(ctx context.Context, proto Object) (bool, error)

	// IsExtensible reports whether new properties may be added.
	IsExtensible(ctx context.Context) (bool, error)

	// PreventExtensions makes the object non-extensible. Returns false if
	// the object refused the transition.
	PreventExtensions(ctx context.Context) (bool, error)

	// GetOwnProperty returns the descriptor for an own property, or nil if
	// the object has no own property with that key.
	GetOwnProperty(ctx context.Context, key string) (*PropertyDescriptor, error)

	// DefineOwnProperty creates or updates an own property. Returns false
	// if the definition was rejected.
	DefineOwnProperty(ctx context.Context, key string, desc PropertyDescriptor) (bool, error)

	// Has reports whether the key names a property of the object or of any
	// object on its prototype chain.
	Has(ctx context.Context, key string) (bool, error)

	// Get reads the property value for the key, walking the prototype chain
	// and invoking getters with the given receiver.
	Get(ctx context.Context, key string, receiver Value) (Value, error)

	// Set writes the property value for the key, invoking setters with the
	// given receiver. Returns false if the write was rejected.
	Set(ctx context.Context, key string, value Value, receiver Value) (bool, error)

	// Delete removes an own property. Returns false if the property exists
	// and is not configurable.
	Delete(ctx context.Context, key string) (bool, error)

	// OwnKeys returns the object's own property keys in order.
	OwnKeys(ctx context.Context) ([]string, error)
}

// Callable is an interface for values that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Value) (Value, error)
}

// Constructable is an interface for values that support construction
// semantics. The newTarget is the object construction was originally invoked
// on, which differs from the receiver when construction was forwarded.
type Constructable interface {
	Construct(ctx context.Context, args []Value, newTarget Object) (Object, error)
}

// AsCallable returns the callable form of a value. Unlike a plain type
// assertion, this honors a proxy's call capability, which is fixed at
// construction from its target.
func AsCallable(v Value) (Callable, bool) {
	switch v := v.(type) {
	case *Proxy:
		if !v.callable {
			return nil, false
		}
		return v, true
	case Callable:
		return v, true
	}
	return nil, false
}

// AsConstructable returns the constructable form of a value, honoring a
// proxy's construct capability.
func AsConstructable(v Value) (Constructable, bool) {
	switch v := v.(type) {
	case *Proxy:
		if !v.constructable {
			return nil, false
		}
		return v, true
	case *Builtin:
		if v.ctorFn == nil {
			return nil, false
		}
		return v, true
	case Constructable:
		return v, true
	}
	return nil, false
}
