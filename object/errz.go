package object

import (
	"github.com/deepnoodle-ai/shadow/errors"
)

// Re-export types from the errors package for convenience
type (
	TypeConstraintError   = errors.TypeConstraintError
	ConsistencyError      = errors.ConsistencyError
	NotCallableError      = errors.NotCallableError
	NotConstructableError = errors.NotConstructableError
	FatalError            = errors.FatalError
)

// Re-export constructors for convenience
var (
	TypeConstraintErrorf   = errors.TypeConstraintErrorf
	ConsistencyErrorf      = errors.ConsistencyErrorf
	NotCallableErrorf      = errors.NotCallableErrorf
	NotConstructableErrorf = errors.NotConstructableErrorf
	NewConsistencyError    = errors.NewConsistencyError
)
