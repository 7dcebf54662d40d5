package object

import (
	"context"
	"fmt"
)

var (
	_ Object   = (*Builtin)(nil)
	_ Callable = (*Builtin)(nil)
)

// BuiltinFunction holds the type of a built-in function.
type BuiltinFunction func(ctx context.Context, args ...Value) (Value, error)

// CtorFunction holds the type of a built-in constructor.
type CtorFunction func(ctx context.Context, args []Value, newTarget Object) (Object, error)

// Builtin wraps a Go function and implements the Object and Callable
// interfaces. It owns ordinary property storage, so builtins can carry
// properties and serve as proxy targets. Builtins are the callable leaf of
// the model: traps, getters, and setters are all builtins.
type Builtin struct {
	*Ordinary

	// The name of the function.
	name string

	// The function that this object wraps.
	fn BuiltinFunction

	// Optional constructor behavior. A builtin with a nil ctorFn does not
	// support construction.
	ctorFn CtorFunction
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("builtin(%s)", b.name)
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Name() string {
	return b.name
}

func (b *Builtin) Interface() interface{} {
	return b.fn
}

func (b *Builtin) Equals(other Value) bool {
	otherBuiltin, ok := other.(*Builtin)
	if !ok {
		return false
	}
	return b == otherBuiltin
}

func (b *Builtin) IsTruthy() bool {
	return true
}

func (b *Builtin) Call(ctx context.Context, args ...Value) (Value, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Construct(ctx context.Context, args []Value, newTarget Object) (Object, error) {
	if b.ctorFn == nil {
		return nil, NotConstructableErrorf("builtin %s is not constructable", b.name)
	}
	return b.ctorFn(ctx, args, newTarget)
}

func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{Ordinary: NewObject(), name: name, fn: fn}
}

// NewCtor returns a builtin that supports both invocation and construction.
func NewCtor(name string, fn BuiltinFunction, ctorFn CtorFunction) *Builtin {
	return &Builtin{Ordinary: NewObject(), name: name, fn: fn, ctorFn: ctorFn}
}
