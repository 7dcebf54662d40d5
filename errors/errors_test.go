package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestTypeConstraintError(t *testing.T) {
	err := TypeConstraintErrorf("trap %q is not callable", "get")
	assert.Equal(t, err.Error(), `trap "get" is not callable`)
	assert.True(t, err.IsFatal())

	var fatal FatalError = err
	assert.True(t, fatal.IsFatal())
}

func TestConsistencyError(t *testing.T) {
	err := ConsistencyErrorf("get trap reported inconsistent value for %q", "x")
	assert.Equal(t, err.Error(), `get trap reported inconsistent value for "x"`)
	assert.True(t, err.IsFatal())
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewConsistencyError(cause)
	assert.Equal(t, goerrors.Unwrap(err), cause)

	var typed *ConsistencyError
	assert.True(t, goerrors.As(err, &typed))
}

func TestCallGatingErrors(t *testing.T) {
	callErr := NotCallableErrorf("object is not callable")
	assert.Equal(t, callErr.Error(), "object is not callable")
	assert.True(t, callErr.IsFatal())

	ctorErr := NotConstructableErrorf("object is not constructable")
	assert.Equal(t, ctorErr.Error(), "object is not constructable")
	assert.True(t, ctorErr.IsFatal())
}
