// Package errz classifies proxy errors into kinds so that tooling can label
// or branch on them without depending on the concrete error types.
package errz

import (
	goerrors "errors"

	"github.com/deepnoodle-ai/shadow/errors"
)

// ErrorKind represents the category of a proxy error.
type ErrorKind int

const (
	// ErrUnknown indicates an error raised outside the proxy layer.
	ErrUnknown ErrorKind = iota
	// ErrTypeConstraint indicates a structural precondition violation.
	ErrTypeConstraint
	// ErrConsistency indicates a trap result that contradicts the target.
	ErrConsistency
	// ErrNotCallable indicates invocation of a non-callable value.
	ErrNotCallable
	// ErrNotConstructable indicates construction with a non-constructable value.
	ErrNotConstructable
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrTypeConstraint:
		return "type constraint violation"
	case ErrConsistency:
		return "consistency violation"
	case ErrNotCallable:
		return "not callable"
	case ErrNotConstructable:
		return "not constructable"
	default:
		return "error"
	}
}

// Kind inspects the error chain and reports which proxy error category it
// belongs to, or ErrUnknown for errors the proxy layer did not raise.
func Kind(err error) ErrorKind {
	var typeErr *errors.TypeConstraintError
	if goerrors.As(err, &typeErr) {
		return ErrTypeConstraint
	}
	var consistencyErr *errors.ConsistencyError
	if goerrors.As(err, &consistencyErr) {
		return ErrConsistency
	}
	var callErr *errors.NotCallableError
	if goerrors.As(err, &callErr) {
		return ErrNotCallable
	}
	var ctorErr *errors.NotConstructableError
	if goerrors.As(err, &ctorErr) {
		return ErrNotConstructable
	}
	return ErrUnknown
}

// IsViolation reports whether the error is one of the proxy's invariant
// violations, as opposed to an ordinary failure bubbled up from a trap.
func IsViolation(err error) bool {
	switch Kind(err) {
	case ErrTypeConstraint, ErrConsistency:
		return true
	default:
		return false
	}
}

// IsFatal reports whether the error chain contains a fatal proxy error.
func IsFatal(err error) bool {
	var fatal errors.FatalError
	if goerrors.As(err, &fatal) {
		return fatal.IsFatal()
	}
	return false
}
