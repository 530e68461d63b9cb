package validate

import "errors"

var (
	// ErrNilRegistry is returned by NewEngine when no registry is provided.
	ErrNilRegistry = errors.New("validate: registry cannot be nil")

	// ErrNilResult is returned by repositories handed a nil result.
	ErrNilResult = errors.New("validate: result cannot be nil")

	// ErrPersistenceFailed wraps repository errors returned alongside a
	// complete Result. Use errors.Is to detect it.
	ErrPersistenceFailed = errors.New("validate: failed to persist validation errors")
)
