package object

import (
	"github.com/hashicorp/go-multierror"
)

// The functions in this file validate trap results against the target's
// actual descriptor and extensibility state. Each is a pure function of that
// state and the result: none of them read the target or invoke user code.
// They exist to preserve the object model's global guarantees, e.g. that a
// non-configurable non-writable data property always reads back the same
// value, no matter what a trap claims.

// checkGetResult validates the value a get trap returned for a key.
func checkGetResult(key string, desc *PropertyDescriptor, result Value) error {
	if desc == nil || desc.Configurable.Bool() {
		return nil
	}
	if desc.IsAccessor() {
		if !desc.HasGetter() && !result.Equals(Nil) {
			return ConsistencyErrorf(
				"get trap returned a value for %q, which is a non-configurable accessor without a getter", key)
		}
		return nil
	}
	if !desc.Writable.Bool() && !valueEquals(result, desc.Value) {
		return ConsistencyErrorf(
			"get trap returned an inconsistent value for non-configurable, non-writable property %q", key)
	}
	return nil
}

// checkSetResult validates a set trap's success claim against the target's
// descriptor for the key. Only called when the trap reported success.
func checkSetResult(key string, desc *PropertyDescriptor, value Value) error {
	if desc == nil || desc.Configurable.Bool() {
		return nil
	}
	if desc.IsAccessor() {
		if !desc.HasSetter() {
			return ConsistencyErrorf(
				"set trap reported success for %q, which is a non-configurable accessor without a setter", key)
		}
		return nil
	}
	if !desc.Writable.Bool() && !valueEquals(value, desc.Value) {
		return ConsistencyErrorf(
			"set trap reported success changing non-configurable, non-writable property %q", key)
	}
	return nil
}

// checkHasResult validates a has trap result. A non-configurable own
// property may not be reported absent, and a non-extensible target's key set
// is fixed in both directions.
func checkHasResult(key string, desc *PropertyDescriptor, extensible, result bool) error {
	if result {
		if desc == nil && !extensible {
			return ConsistencyErrorf(
				"has trap reported nonexistent property %q on a non-extensible target", key)
		}
		return nil
	}
	if desc != nil && !desc.Configurable.Bool() {
		return ConsistencyErrorf(
			"has trap reported non-configurable property %q as absent", key)
	}
	if desc != nil && !extensible {
		return ConsistencyErrorf(
			"has trap reported property %q of a non-extensible target as absent", key)
	}
	return nil
}

// checkDeleteResult validates a delete trap result.
func checkDeleteResult(key string, desc *PropertyDescriptor, result bool) error {
	if !result {
		return nil
	}
	if desc != nil && !desc.Configurable.Bool() {
		return ConsistencyErrorf(
			"deleteProperty trap reported success deleting non-configurable property %q", key)
	}
	return nil
}

// checkDefineResult validates a defineProperty trap's success claim: the
// target must be able to hold the property without weakening its guarantees.
func checkDefineResult(key string, existing *PropertyDescriptor, extensible bool, requested *PropertyDescriptor) error {
	if existing == nil {
		if !extensible {
			return ConsistencyErrorf(
				"defineProperty trap reported success adding %q to a non-extensible target", key)
		}
		return nil
	}
	if existing.Configurable.Bool() {
		return nil
	}
	if requested.Configurable == FlagTrue {
		return ConsistencyErrorf(
			"defineProperty trap reported success making non-configurable property %q configurable", key)
	}
	if !existing.IsAccessor() && !existing.Writable.Bool() && requested.Writable == FlagTrue {
		return ConsistencyErrorf(
			"defineProperty trap reported success making non-writable property %q writable", key)
	}
	return nil
}

// checkDescriptorResult validates the descriptor (or nil, for "no such
// property") a getOwnPropertyDescriptor trap returned.
func checkDescriptorResult(key string, desc *PropertyDescriptor, extensible bool, result *PropertyDescriptor) error {
	if result == nil {
		if desc == nil {
			return nil
		}
		if !desc.Configurable.Bool() {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap reported non-configurable property %q as absent", key)
		}
		if !extensible {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap reported property %q of a non-extensible target as absent", key)
		}
		return nil
	}
	if desc == nil {
		if !extensible {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap reported nonexistent property %q on a non-extensible target", key)
		}
		return nil
	}
	if desc.Configurable.Bool() {
		return nil
	}
	if result.Configurable.Bool() {
		return ConsistencyErrorf(
			"getOwnPropertyDescriptor trap reported non-configurable property %q as configurable", key)
	}
	if result.IsAccessor() != desc.IsAccessor() {
		return ConsistencyErrorf(
			"getOwnPropertyDescriptor trap changed the kind of non-configurable property %q", key)
	}
	if desc.IsAccessor() {
		if !valueEquals(result.Getter, desc.Getter) || !valueEquals(result.Setter, desc.Setter) {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap changed the accessors of non-configurable property %q", key)
		}
		return nil
	}
	if !desc.Writable.Bool() {
		if result.Writable.Bool() {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap reported non-writable property %q as writable", key)
		}
		if !valueEquals(result.Value, desc.Value) {
			return ConsistencyErrorf(
				"getOwnPropertyDescriptor trap returned an inconsistent value for non-writable property %q", key)
		}
	}
	return nil
}

// checkOwnKeysResult validates an ownKeys trap result against the target's
// actual keys. All violations are reported together.
func checkOwnKeysResult(targetKeys, nonConfigurable []string, extensible bool, result []string) error {
	var errs error
	seen := make(map[string]bool, len(result))
	for _, key := range result {
		if seen[key] {
			errs = multierror.Append(errs, ConsistencyErrorf(
				"ownKeys trap returned duplicate key %q", key))
		}
		seen[key] = true
	}
	for _, key := range nonConfigurable {
		if !seen[key] {
			errs = multierror.Append(errs, ConsistencyErrorf(
				"ownKeys trap omitted non-configurable property %q", key))
		}
	}
	if !extensible {
		actual := make(map[string]bool, len(targetKeys))
		for _, key := range targetKeys {
			actual[key] = true
			if !seen[key] {
				errs = multierror.Append(errs, ConsistencyErrorf(
					"ownKeys trap omitted key %q of a non-extensible target", key))
			}
		}
		for _, key := range result {
			if !actual[key] {
				errs = multierror.Append(errs, ConsistencyErrorf(
					"ownKeys trap added key %q not present on a non-extensible target", key))
			}
		}
	}
	return errs
}

// checkIsExtensibleResult validates an isExtensible trap result.
func checkIsExtensibleResult(actual, result bool) error {
	if actual != result {
		return ConsistencyErrorf(
			"isExtensible trap returned %v but the target's extensibility is %v", result, actual)
	}
	return nil
}

// checkPreventExtensionsResult validates a preventExtensions trap's success
// claim: the target must actually be non-extensible afterwards.
func checkPreventExtensionsResult(stillExtensible, result bool) error {
	if result && stillExtensible {
		return ConsistencyErrorf(
			"preventExtensions trap reported success but the target is still extensible")
	}
	return nil
}

// checkPrototypeResult validates a getPrototypeOf trap result.
func checkPrototypeResult(extensible bool, actual Object, result Object) error {
	if extensible {
		return nil
	}
	if !SameObject(actual, result) {
		return ConsistencyErrorf(
			"getPrototypeOf trap returned a different prototype for a non-extensible target")
	}
	return nil
}

// checkSetPrototypeResult validates a setPrototypeOf trap's success claim.
func checkSetPrototypeResult(extensible bool, actual, requested Object, result bool) error {
	if !result || extensible {
		return nil
	}
	if !SameObject(actual, requested) {
		return ConsistencyErrorf(
			"setPrototypeOf trap reported success changing the prototype of a non-extensible target")
	}
	return nil
}
