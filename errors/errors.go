// Package errors defines the error kinds raised by the shadow proxy layer.
//
// Two families exist: TypeConstraintError for structural preconditions that
// caller or handler code violated (non-object target, non-callable trap value,
// non-object construct result), and ConsistencyError for trap results that
// contradict the target's actual non-configurable or non-extensible state.
// NotCallableError and NotConstructableError gate invocation and construction
// of proxies whose targets lack those capabilities.
//
// All of these are terminal for the operation in progress: nothing in this
// module retries, logs, or substitutes a default value.
package errors

import "fmt"

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// TypeConstraintError indicates a structural precondition was violated:
// a non-object target or handler, a non-callable non-nil trap value, or a
// construct trap returning a non-object. It always signals a bug in caller
// or handler code and is always fatal.
type TypeConstraintError struct {
	Err error
}

func (e *TypeConstraintError) Error() string {
	return e.Err.Error()
}

func (e *TypeConstraintError) Unwrap() error {
	return e.Err
}

func (e *TypeConstraintError) IsFatal() bool {
	return true
}

func NewTypeConstraintError(err error) *TypeConstraintError {
	return &TypeConstraintError{Err: err}
}

func TypeConstraintErrorf(format string, args ...any) *TypeConstraintError {
	return NewTypeConstraintError(fmt.Errorf(format, args...))
}

// ConsistencyError indicates a trap result that would, if accepted,
// contradict a guarantee the object model makes about non-configurable
// properties or non-extensible objects. The triggering operation aborts
// without mutating the proxy's own state.
type ConsistencyError struct {
	Err error
}

func (e *ConsistencyError) Error() string {
	return e.Err.Error()
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

func (e *ConsistencyError) IsFatal() bool {
	return true
}

func NewConsistencyError(err error) *ConsistencyError {
	return &ConsistencyError{Err: err}
}

func ConsistencyErrorf(format string, args ...any) *ConsistencyError {
	return NewConsistencyError(fmt.Errorf(format, args...))
}

// NotCallableError indicates an attempt to invoke a value that does not
// support invocation.
type NotCallableError struct {
	Err error
}

func (e *NotCallableError) Error() string {
	return e.Err.Error()
}

func (e *NotCallableError) Unwrap() error {
	return e.Err
}

func (e *NotCallableError) IsFatal() bool {
	return true
}

func NewNotCallableError(err error) *NotCallableError {
	return &NotCallableError{Err: err}
}

func NotCallableErrorf(format string, args ...any) *NotCallableError {
	return NewNotCallableError(fmt.Errorf(format, args...))
}

// NotConstructableError indicates an attempt to construct with a value that
// does not support construction.
type NotConstructableError struct {
	Err error
}

func (e *NotConstructableError) Error() string {
	return e.Err.Error()
}

func (e *NotConstructableError) Unwrap() error {
	return e.Err
}

func (e *NotConstructableError) IsFatal() bool {
	return true
}

func NewNotConstructableError(err error) *NotConstructableError {
	return &NotConstructableError{Err: err}
}

func NotConstructableErrorf(format string, args ...any) *NotConstructableError {
	return NewNotConstructableError(fmt.Errorf(format, args...))
}
