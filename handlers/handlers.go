// Package handlers provides ready-made proxy handlers for common wrapping
// patterns. Each constructor returns an ordinary object suitable for passing
// to shadow.New or object.NewProxy; the proxy snapshots its traps at
// construction, so mutating a handler afterwards has no effect.
package handlers

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/shadow/object"
	"github.com/rs/zerolog"
)

// trapNames in dispatch order, used to install complete handler sets.
var trapNames = []string{
	"getPrototypeOf",
	"setPrototypeOf",
	"isExtensible",
	"preventExtensions",
	"getOwnPropertyDescriptor",
	"defineProperty",
	"has",
	"get",
	"set",
	"deleteProperty",
	"ownKeys",
}

// forwarder returns a trap implementation that performs the named operation
// directly on the target, making the trap behaviorally neutral.
func forwarder(name string) object.BuiltinFunction {
	return func(ctx context.Context, args ...object.Value) (object.Value, error) {
		target, err := object.AsObject(args[0])
		if err != nil {
			return nil, err
		}
		switch name {
		case "getPrototypeOf":
			proto, err := target.Prototype(ctx)
			if err != nil {
				return nil, err
			}
			if proto == nil {
				return object.Nil, nil
			}
			return proto, nil
		case "setPrototypeOf":
			var proto object.Object
			if obj, err := object.AsObject(args[1]); err == nil {
				proto = obj
			}
			ok, err := target.SetPrototype(ctx, proto)
			return object.NewBool(ok), err
		case "isExtensible":
			ok, err := target.IsExtensible(ctx)
			return object.NewBool(ok), err
		case "preventExtensions":
			ok, err := target.PreventExtensions(ctx)
			return object.NewBool(ok), err
		case "getOwnPropertyDescriptor":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			desc, err := target.GetOwnProperty(ctx, key)
			if err != nil {
				return nil, err
			}
			if desc == nil {
				return object.Nil, nil
			}
			return desc.ToMap(), nil
		case "defineProperty":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			desc, err := object.DescriptorFromValue(args[2])
			if err != nil {
				return nil, err
			}
			ok, err := target.DefineOwnProperty(ctx, key, *desc)
			return object.NewBool(ok), err
		case "has":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			ok, err := target.Has(ctx, key)
			return object.NewBool(ok), err
		case "get":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			return target.Get(ctx, key, args[2])
		case "set":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			ok, err := target.Set(ctx, key, args[2], args[3])
			return object.NewBool(ok), err
		case "deleteProperty":
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			ok, err := target.Delete(ctx, key)
			return object.NewBool(ok), err
		case "ownKeys":
			keys, err := target.OwnKeys(ctx)
			if err != nil {
				return nil, err
			}
			return object.NewStringList(keys), nil
		}
		return nil, fmt.Errorf("unknown trap: %s", name)
	}
}

// Forwarding returns a handler that traps every structural operation and
// forwards it to the target unchanged. Useful as a base for instrumentation.
func Forwarding() (*object.Ordinary, error) {
	handler := object.NewObject()
	for _, name := range trapNames {
		if err := handler.Put(name, object.NewBuiltin(name, forwarder(name))); err != nil {
			return nil, err
		}
	}
	return handler, nil
}

// Tracing returns a forwarding handler that logs every trap hit to the given
// logger before performing the operation on the target.
func Tracing(logger zerolog.Logger) (*object.Ordinary, error) {
	handler := object.NewObject()
	for _, name := range trapNames {
		name := name
		forward := forwarder(name)
		fn := func(ctx context.Context, args ...object.Value) (object.Value, error) {
			event := logger.Info().Str("trap", name)
			if len(args) > 1 {
				if key, ok := args[1].(*object.String); ok {
					event = event.Str("key", key.Value())
				}
			}
			event.Msg("trap invoked")
			return forward(ctx, args...)
		}
		if err := handler.Put(name, object.NewBuiltin(name, fn)); err != nil {
			return nil, err
		}
	}
	return handler, nil
}

// ReadOnly returns a handler that rejects every mutation while letting reads
// through to the target. Mutating traps report failure without touching the
// target, which never conflicts with the target's actual state.
func ReadOnly() (*object.Ordinary, error) {
	handler := object.NewObject()
	deny := func(ctx context.Context, args ...object.Value) (object.Value, error) {
		return object.False, nil
	}
	for _, name := range []string{"set", "defineProperty", "deleteProperty", "setPrototypeOf", "preventExtensions"} {
		if err := handler.Put(name, object.NewBuiltin(name, deny)); err != nil {
			return nil, err
		}
	}
	return handler, nil
}

// Hidden returns a handler that hides the given keys from lookups, existence
// checks, and enumeration. Hiding is only consistent for configurable
// properties on an extensible target; hiding a non-configurable property
// makes the proxy's reads fail with a consistency violation instead.
func Hidden(hidden ...string) (*object.Ordinary, error) {
	isHidden := make(map[string]bool, len(hidden))
	for _, key := range hidden {
		isHidden[key] = true
	}

	handler := object.NewObject()

	keyed := func(name string, result object.Value) error {
		forward := forwarder(name)
		return handler.Put(name, object.NewBuiltin(name, func(ctx context.Context, args ...object.Value) (object.Value, error) {
			key, err := object.AsString(args[1])
			if err != nil {
				return nil, err
			}
			if isHidden[key] {
				return result, nil
			}
			return forward(ctx, args...)
		}))
	}
	if err := keyed("get", object.Nil); err != nil {
		return nil, err
	}
	if err := keyed("has", object.False); err != nil {
		return nil, err
	}
	if err := keyed("getOwnPropertyDescriptor", object.Nil); err != nil {
		return nil, err
	}

	forwardKeys := forwarder("ownKeys")
	err := handler.Put("ownKeys", object.NewBuiltin("ownKeys", func(ctx context.Context, args ...object.Value) (object.Value, error) {
		result, err := forwardKeys(ctx, args...)
		if err != nil {
			return nil, err
		}
		keys, err := object.AsList(result)
		if err != nil {
			return nil, err
		}
		all, err := keys.Strings()
		if err != nil {
			return nil, err
		}
		visible := make([]string, 0, len(all))
		for _, key := range all {
			if !isHidden[key] {
				visible = append(visible, key)
			}
		}
		return object.NewStringList(visible), nil
	}))
	if err != nil {
		return nil, err
	}
	return handler, nil
}
