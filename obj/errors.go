package obj

import "errors"

// Sentinel errors returned by path operations.
var (
	// ErrEmptyPath is returned by [Set] when the path has no segments.
	ErrEmptyPath = errors.New("obj: path must not be empty")

	// ErrNilMap is returned by [Set] when the target map is nil.
	ErrNilMap = errors.New("obj: cannot set on a nil map")

	// ErrInvalidIndex is returned by [Set] when a segment addressing a
	// []any is not a non-negative integer.
	ErrInvalidIndex = errors.New("obj: invalid slice index in path")
)
