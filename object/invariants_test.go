package object

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func nonConfigurableData(value Value, writable bool) *PropertyDescriptor {
	return &PropertyDescriptor{
		Value:        value,
		Writable:     FlagFromBool(writable),
		Enumerable:   FlagFalse,
		Configurable: FlagFalse,
	}
}

func TestCheckGetResult(t *testing.T) {
	// No own property: anything goes
	assert.Nil(t, checkGetResult("x", nil, NewInt(5)))

	// Configurable property: anything goes
	desc := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagTrue}
	assert.Nil(t, checkGetResult("x", desc, NewInt(5)))

	// Non-configurable, non-writable data property pins the value
	desc = nonConfigurableData(NewInt(1), false)
	assert.Nil(t, checkGetResult("x", desc, NewInt(1)))
	assert.NotNil(t, checkGetResult("x", desc, NewInt(2)))

	// Writable data property does not
	desc = nonConfigurableData(NewInt(1), true)
	assert.Nil(t, checkGetResult("x", desc, NewInt(2)))

	// Non-configurable accessor without a getter must read as nil
	getterless := &PropertyDescriptor{Setter: NewBuiltin("s", nil), Getter: Nil, Configurable: FlagFalse}
	assert.Nil(t, checkGetResult("x", getterless, Nil))
	assert.NotNil(t, checkGetResult("x", getterless, NewInt(1)))
}

func TestCheckSetResult(t *testing.T) {
	desc := nonConfigurableData(NewInt(1), false)
	assert.Nil(t, checkSetResult("x", desc, NewInt(1)))
	assert.NotNil(t, checkSetResult("x", desc, NewInt(2)))

	setterless := &PropertyDescriptor{Getter: NewBuiltin("g", nil), Setter: Nil, Configurable: FlagFalse}
	assert.NotNil(t, checkSetResult("x", setterless, NewInt(1)))

	withSetter := &PropertyDescriptor{Setter: NewBuiltin("s", nil), Configurable: FlagFalse}
	assert.Nil(t, checkSetResult("x", withSetter, NewInt(1)))
}

func TestCheckHasResult(t *testing.T) {
	locked := nonConfigurableData(NewInt(1), false)

	// A non-configurable own property may not be hidden
	assert.NotNil(t, checkHasResult("x", locked, true, false))
	assert.Nil(t, checkHasResult("x", locked, true, true))

	// Any own property of a non-extensible target may not be hidden
	open := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagTrue}
	assert.NotNil(t, checkHasResult("x", open, false, false))
	assert.Nil(t, checkHasResult("x", open, true, false))

	// A non-extensible target may not grow phantom keys
	assert.NotNil(t, checkHasResult("x", nil, false, true))
	assert.Nil(t, checkHasResult("x", nil, false, false))
}

func TestCheckDeleteResult(t *testing.T) {
	locked := nonConfigurableData(NewInt(1), false)
	assert.NotNil(t, checkDeleteResult("x", locked, true))
	assert.Nil(t, checkDeleteResult("x", locked, false))
	assert.Nil(t, checkDeleteResult("x", nil, true))
}

func TestCheckDefineResult(t *testing.T) {
	// New key on a non-extensible target
	requested := &PropertyDescriptor{Value: NewInt(1)}
	assert.NotNil(t, checkDefineResult("x", nil, false, requested))
	assert.Nil(t, checkDefineResult("x", nil, true, requested))

	// Widening configurability of a non-configurable property
	locked := nonConfigurableData(NewInt(1), false)
	widened := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagTrue}
	assert.NotNil(t, checkDefineResult("x", locked, true, widened))

	// Widening writability of a non-writable property
	writable := &PropertyDescriptor{Value: NewInt(1), Writable: FlagTrue}
	assert.NotNil(t, checkDefineResult("x", locked, true, writable))

	// Compatible redefinition passes
	same := &PropertyDescriptor{Value: NewInt(1)}
	assert.Nil(t, checkDefineResult("x", locked, true, same))
}

func TestCheckDescriptorResult(t *testing.T) {
	locked := nonConfigurableData(NewInt(1), false)

	// Hiding a non-configurable property
	assert.NotNil(t, checkDescriptorResult("x", locked, true, nil))

	// Hiding any property of a non-extensible target
	open := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagTrue}
	assert.NotNil(t, checkDescriptorResult("x", open, false, nil))
	assert.Nil(t, checkDescriptorResult("x", open, true, nil))

	// Reporting a phantom property on a non-extensible target
	phantom := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagFalse}
	phantom.Complete()
	assert.NotNil(t, checkDescriptorResult("x", nil, false, phantom))
	assert.Nil(t, checkDescriptorResult("x", nil, true, phantom))

	// Reporting a non-configurable property as configurable
	loosened := &PropertyDescriptor{Value: NewInt(1), Configurable: FlagTrue}
	loosened.Complete()
	assert.NotNil(t, checkDescriptorResult("x", locked, true, loosened))

	// Reporting a different value for a non-writable property
	changed := nonConfigurableData(NewInt(2), false)
	assert.NotNil(t, checkDescriptorResult("x", locked, true, changed))

	// Faithful report passes
	faithful := nonConfigurableData(NewInt(1), false)
	assert.Nil(t, checkDescriptorResult("x", locked, true, faithful))

	// Changing the property kind
	accessor := &PropertyDescriptor{Getter: NewBuiltin("g", nil), Configurable: FlagFalse}
	accessor.Complete()
	assert.NotNil(t, checkDescriptorResult("x", locked, true, accessor))
}

func TestCheckOwnKeysResult(t *testing.T) {
	targetKeys := []string{"a", "b"}
	nonConfigurable := []string{"a"}

	// Extensible target: only non-configurable keys are pinned
	assert.Nil(t, checkOwnKeysResult(targetKeys, nonConfigurable, true, []string{"a"}))
	assert.NotNil(t, checkOwnKeysResult(targetKeys, nonConfigurable, true, []string{"b"}))

	// Non-extensible target: exact key set required
	assert.Nil(t, checkOwnKeysResult(targetKeys, nonConfigurable, false, []string{"a", "b"}))
	assert.NotNil(t, checkOwnKeysResult(targetKeys, nonConfigurable, false, []string{"a"}))
	assert.NotNil(t, checkOwnKeysResult(targetKeys, nonConfigurable, false, []string{"a", "b", "c"}))

	// Duplicates are rejected outright
	assert.NotNil(t, checkOwnKeysResult(targetKeys, nil, true, []string{"a", "a"}))

	// Multiple violations are reported together
	err := checkOwnKeysResult(targetKeys, nonConfigurable, false, []string{"c", "c"})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)
	assert.Contains(t, err.Error(), `"c"`)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCheckExtensibilityResults(t *testing.T) {
	assert.Nil(t, checkIsExtensibleResult(true, true))
	assert.Nil(t, checkIsExtensibleResult(false, false))
	assert.NotNil(t, checkIsExtensibleResult(true, false))
	assert.NotNil(t, checkIsExtensibleResult(false, true))

	assert.Nil(t, checkPreventExtensionsResult(false, true))
	assert.Nil(t, checkPreventExtensionsResult(true, false))
	assert.NotNil(t, checkPreventExtensionsResult(true, true))
}

func TestCheckPrototypeResults(t *testing.T) {
	a := NewObject()
	b := NewObject()

	// Extensible targets may report any prototype
	assert.Nil(t, checkPrototypeResult(true, a, b))

	// Non-extensible targets pin the prototype
	assert.Nil(t, checkPrototypeResult(false, a, a))
	assert.NotNil(t, checkPrototypeResult(false, a, b))
	assert.NotNil(t, checkPrototypeResult(false, a, nil))
	assert.Nil(t, checkPrototypeResult(false, nil, nil))

	// setPrototypeOf may only claim success for the current prototype
	assert.Nil(t, checkSetPrototypeResult(false, a, a, true))
	assert.NotNil(t, checkSetPrototypeResult(false, a, b, true))
	assert.Nil(t, checkSetPrototypeResult(false, a, b, false))
	assert.Nil(t, checkSetPrototypeResult(true, a, b, true))
}
