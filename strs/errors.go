package strs

import "errors"

// ErrMissingKey is returned by [Template] when a placeholder path does not
// resolve in the data.
var ErrMissingKey = errors.New("strs: template key not found")
