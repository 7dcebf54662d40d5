package object

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/shadow/op"
)

var _ Object = (*Proxy)(nil)

// Proxy is the shadow proxy exotic object. It wraps a target object and
// intercepts the structural operations of the model, forwarding each either
// directly to the target or through a trap captured from a handler.
//
// Traps are captured exactly once, when the proxy is built: NewProxy performs
// one property read per trap name on the handler and keeps only the callable
// results. The handler itself is not retained, so mutating or freezing it
// after construction has no effect on the proxy. Every trap result is
// validated against the target's actual non-configurable and non-extensible
// state before it is accepted.
type Proxy struct {
	target        Object
	traps         TrapTable
	callable      bool
	constructable bool
}

// NewProxy builds a proxy around the target using traps read from the
// handler. This is the only point at which the handler is consulted: one
// property lookup per trap name, via the handler's normal property-read
// semantics (prototype chain and getters included). A trap value that is
// neither nil-valued nor callable is rejected.
func NewProxy(ctx context.Context, target, handler Object) (*Proxy, error) {
	if target == nil {
		return nil, TypeConstraintErrorf("proxy target must be an object")
	}
	if handler == nil {
		return nil, TypeConstraintErrorf("proxy handler must be an object")
	}
	p := &Proxy{target: target}
	for _, trap := range op.Traps() {
		value, err := handler.Get(ctx, trap.Name(), handler)
		if err != nil {
			return nil, err
		}
		if value == nil {
			continue
		}
		if _, isNil := value.(*NilType); isNil {
			continue
		}
		fn, ok := AsCallable(value)
		if !ok {
			return nil, TypeConstraintErrorf("%s trap is not callable (%s given)", trap.Name(), value.Type())
		}
		p.traps.slots[trap] = fn
	}
	if _, ok := AsCallable(target); ok {
		p.callable = true
	}
	if _, ok := AsConstructable(target); ok {
		p.constructable = true
	}
	return p, nil
}

// Target returns the wrapped object.
func (p *Proxy) Target() Object {
	return p.target
}

// Traps returns the proxy's captured trap table.
func (p *Proxy) Traps() *TrapTable {
	return &p.traps
}

// CanCall reports whether the proxy supports invocation, which is fixed at
// construction from the target.
func (p *Proxy) CanCall() bool {
	return p.callable
}

// CanConstruct reports whether the proxy supports construction.
func (p *Proxy) CanConstruct() bool {
	return p.constructable
}

func (p *Proxy) Type() Type {
	return PROXY
}

func (p *Proxy) Inspect() string {
	return fmt.Sprintf("proxy(%s)", p.target.Type())
}

func (p *Proxy) String() string {
	return p.Inspect()
}

func (p *Proxy) Interface() interface{} {
	return p.target.Interface()
}

// Equals compares by identity. A proxy is never equal to its target.
func (p *Proxy) Equals(other Value) bool {
	otherProxy, ok := other.(*Proxy)
	if !ok {
		return false
	}
	return p == otherProxy
}

func (p *Proxy) IsTruthy() bool {
	return true
}

func (p *Proxy) Prototype(ctx context.Context) (Object, error) {
	trap, ok := p.traps.Get(op.GetPrototypeOf)
	if !ok {
		return p.target.Prototype(ctx)
	}
	result, err := trap.Call(ctx, p.target)
	if err != nil {
		return nil, err
	}
	proto, ok := asObjectOrNil(result)
	if !ok {
		return nil, TypeConstraintErrorf("getPrototypeOf trap returned %s, expected an object or nil", result.Type())
	}
	extensible, err := p.target.IsExtensible(ctx)
	if err != nil {
		return nil, err
	}
	if !extensible {
		actual, err := p.target.Prototype(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkPrototypeResult(extensible, actual, proto); err != nil {
			return nil, err
		}
	}
	return proto, nil
}

func (p *Proxy) SetPrototype(ctx context.Context, proto Object) (bool, error) {
	trap, ok := p.traps.Get(op.SetPrototypeOf)
	if !ok {
		return p.target.SetPrototype(ctx, proto)
	}
	result, err := trap.Call(ctx, p.target, objectOrNilValue(proto))
	if err != nil {
		return false, err
	}
	if !result.IsTruthy() {
		return false, nil
	}
	extensible, err := p.target.IsExtensible(ctx)
	if err != nil {
		return false, err
	}
	if !extensible {
		actual, err := p.target.Prototype(ctx)
		if err != nil {
			return false, err
		}
		if err := checkSetPrototypeResult(extensible, actual, proto, true); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (p *Proxy) IsExtensible(ctx context.Context) (bool, error) {
	trap, ok := p.traps.Get(op.IsExtensible)
	if !ok {
		return p.target.IsExtensible(ctx)
	}
	result, err := trap.Call(ctx, p.target)
	if err != nil {
		return false, err
	}
	actual, err := p.target.IsExtensible(ctx)
	if err != nil {
		return false, err
	}
	if err := checkIsExtensibleResult(actual, result.IsTruthy()); err != nil {
		return false, err
	}
	return actual, nil
}

func (p *Proxy) PreventExtensions(ctx context.Context) (bool, error) {
	trap, ok := p.traps.Get(op.PreventExtensions)
	if !ok {
		return p.target.PreventExtensions(ctx)
	}
	result, err := trap.Call(ctx, p.target)
	if err != nil {
		return false, err
	}
	if !result.IsTruthy() {
		return false, nil
	}
	extensible, err := p.target.IsExtensible(ctx)
	if err != nil {
		return false, err
	}
	if err := checkPreventExtensionsResult(extensible, true); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Proxy) GetOwnProperty(ctx context.Context, key string) (*PropertyDescriptor, error) {
	trap, ok := p.traps.Get(op.GetOwnPropertyDescriptor)
	if !ok {
		return p.target.GetOwnProperty(ctx, key)
	}
	result, err := trap.Call(ctx, p.target, NewString(key))
	if err != nil {
		return nil, err
	}
	var resultDesc *PropertyDescriptor
	if _, isNil := result.(*NilType); !isNil {
		resultDesc, err = DescriptorFromValue(result)
		if err != nil {
			return nil, err
		}
		resultDesc.Complete()
	}
	desc, extensible, err := p.targetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := checkDescriptorResult(key, desc, extensible, resultDesc); err != nil {
		return nil, err
	}
	return resultDesc, nil
}

func (p *Proxy) DefineOwnProperty(ctx context.Context, key string, desc PropertyDescriptor) (bool, error) {
	trap, ok := p.traps.Get(op.DefineProperty)
	if !ok {
		return p.target.DefineOwnProperty(ctx, key, desc)
	}
	result, err := trap.Call(ctx, p.target, NewString(key), desc.ToMap())
	if err != nil {
		return false, err
	}
	if !result.IsTruthy() {
		return false, nil
	}
	existing, extensible, err := p.targetState(ctx, key)
	if err != nil {
		return false, err
	}
	if err := checkDefineResult(key, existing, extensible, &desc); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Proxy) Has(ctx context.Context, key string) (bool, error) {
	trap, ok := p.traps.Get(op.Has)
	if !ok {
		return p.target.Has(ctx, key)
	}
	result, err := trap.Call(ctx, p.target, NewString(key))
	if err != nil {
		return false, err
	}
	has := result.IsTruthy()
	desc, extensible, err := p.targetState(ctx, key)
	if err != nil {
		return false, err
	}
	if err := checkHasResult(key, desc, extensible, has); err != nil {
		return false, err
	}
	return has, nil
}

func (p *Proxy) Get(ctx context.Context, key string, receiver Value) (Value, error) {
	if receiver == nil {
		receiver = p
	}
	trap, ok := p.traps.Get(op.Get)
	if !ok {
		return p.target.Get(ctx, key, receiver)
	}
	result, err := trap.Call(ctx, p.target, NewString(key), receiver)
	if err != nil {
		return nil, err
	}
	desc, err := p.target.GetOwnProperty(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := checkGetResult(key, desc, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Proxy) Set(ctx context.Context, key string, value Value, receiver Value) (bool, error) {
	if receiver == nil {
		receiver = p
	}
	trap, ok := p.traps.Get(op.Set)
	if !ok {
		return p.target.Set(ctx, key, value, receiver)
	}
	result, err := trap.Call(ctx, p.target, NewString(key), value, receiver)
	if err != nil {
		return false, err
	}
	if !result.IsTruthy() {
		return false, nil
	}
	desc, err := p.target.GetOwnProperty(ctx, key)
	if err != nil {
		return false, err
	}
	if err := checkSetResult(key, desc, value); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Proxy) Delete(ctx context.Context, key string) (bool, error) {
	trap, ok := p.traps.Get(op.DeleteProperty)
	if !ok {
		return p.target.Delete(ctx, key)
	}
	result, err := trap.Call(ctx, p.target, NewString(key))
	if err != nil {
		return false, err
	}
	if !result.IsTruthy() {
		return false, nil
	}
	desc, err := p.target.GetOwnProperty(ctx, key)
	if err != nil {
		return false, err
	}
	if err := checkDeleteResult(key, desc, true); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Proxy) OwnKeys(ctx context.Context) ([]string, error) {
	trap, ok := p.traps.Get(op.OwnKeys)
	if !ok {
		return p.target.OwnKeys(ctx)
	}
	result, err := trap.Call(ctx, p.target)
	if err != nil {
		return nil, err
	}
	list, ok := result.(*List)
	if !ok {
		return nil, TypeConstraintErrorf("ownKeys trap returned %s, expected a list", result.Type())
	}
	keys, err := list.Strings()
	if err != nil {
		return nil, err
	}
	targetKeys, err := p.target.OwnKeys(ctx)
	if err != nil {
		return nil, err
	}
	var nonConfigurable []string
	for _, key := range targetKeys {
		desc, err := p.target.GetOwnProperty(ctx, key)
		if err != nil {
			return nil, err
		}
		if desc != nil && !desc.Configurable.Bool() {
			nonConfigurable = append(nonConfigurable, key)
		}
	}
	extensible, err := p.target.IsExtensible(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkOwnKeysResult(targetKeys, nonConfigurable, extensible, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Call invokes the proxy as a function with no receiver.
func (p *Proxy) Call(ctx context.Context, args ...Value) (Value, error) {
	return p.Apply(ctx, Nil, args)
}

// Apply invokes the proxy as a function with an explicit receiver. If an
// apply trap was captured it receives (target, receiver, argument list) and
// its result is returned verbatim: call results are unconstrained, so no
// invariant check runs here.
func (p *Proxy) Apply(ctx context.Context, this Value, args []Value) (Value, error) {
	if !p.callable {
		return nil, NotCallableErrorf("proxy target %s is not callable", p.target.Type())
	}
	trap, ok := p.traps.Get(op.Apply)
	if !ok {
		if applier, ok := p.target.(interface {
			Apply(ctx context.Context, this Value, args []Value) (Value, error)
		}); ok {
			return applier.Apply(ctx, this, args)
		}
		fn, _ := AsCallable(p.target)
		return fn.Call(ctx, args...)
	}
	return trap.Call(ctx, p.target, this, NewList(args))
}

// Construct invokes the proxy's construction semantics. A nil newTarget
// defaults to the proxy itself. A construct trap must return an object.
func (p *Proxy) Construct(ctx context.Context, args []Value, newTarget Object) (Object, error) {
	if !p.constructable {
		return nil, NotConstructableErrorf("proxy target %s is not constructable", p.target.Type())
	}
	if newTarget == nil {
		newTarget = p
	}
	trap, ok := p.traps.Get(op.Construct)
	if !ok {
		ctor, _ := AsConstructable(p.target)
		return ctor.Construct(ctx, args, newTarget)
	}
	result, err := trap.Call(ctx, p.target, NewList(args), newTarget)
	if err != nil {
		return nil, err
	}
	obj, ok := result.(Object)
	if !ok {
		return nil, TypeConstraintErrorf("construct trap returned %s, expected an object", result.Type())
	}
	return obj, nil
}

// targetState reads the target's own descriptor for a key together with its
// extensibility, the two facts most invariant checks need.
func (p *Proxy) targetState(ctx context.Context, key string) (*PropertyDescriptor, bool, error) {
	desc, err := p.target.GetOwnProperty(ctx, key)
	if err != nil {
		return nil, false, err
	}
	extensible, err := p.target.IsExtensible(ctx)
	if err != nil {
		return nil, false, err
	}
	return desc, extensible, nil
}

// asObjectOrNil converts a trap result that must be either an object or nil
// into an Object reference (nil for the nil value).
func asObjectOrNil(v Value) (Object, bool) {
	if _, isNil := v.(*NilType); isNil {
		return nil, true
	}
	obj, ok := v.(Object)
	return obj, ok
}

// objectOrNilValue is the inverse: a nil Object becomes the Nil value.
func objectOrNilValue(obj Object) Value {
	if obj == nil {
		return Nil
	}
	return obj
}
