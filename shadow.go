// Package shadow provides a proxy exotic object for a dynamic object model:
// a wrapper that intercepts structural operations on a target object and
// optionally redirects each one to a trap function.
//
// Traps are captured exactly once, at construction time, from a handler
// object. The handler is never consulted again and may be discarded, mutated,
// or frozen afterwards with no effect on the proxy. Every trap result is
// validated against the target's actual non-configurable and non-extensible
// state, so untrusted trap code cannot violate the object model's global
// consistency guarantees.
//
// Basic usage:
//
//	target := object.NewObject()
//	target.Put("x", object.NewInt(1))
//
//	handler := object.NewObject()
//	handler.Put("get", object.NewBuiltin("get", func(ctx context.Context, args ...object.Value) (object.Value, error) {
//		// args are (target, key, receiver)
//		return object.NewInt(42), nil
//	}))
//
//	p, err := shadow.New(ctx, target, handler)
package shadow

import (
	"context"

	"github.com/deepnoodle-ai/shadow/object"
)

// Type aliases for the core object model, so simple uses of this package
// need no direct import of the object package.
type (
	Value              = object.Value
	Object             = object.Object
	Proxy              = object.Proxy
	PropertyDescriptor = object.PropertyDescriptor
)

// New builds a proxy around the target using traps read from the handler.
// This is the sole construction entry point: there is no revocation API, no
// way to change traps after construction, and no way to retrieve the handler
// from the returned proxy.
func New(ctx context.Context, target, handler object.Object) (*object.Proxy, error) {
	return object.NewProxy(ctx, target, handler)
}
