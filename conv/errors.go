package conv

import "errors"

// ErrConversion is wrapped by every E-suffixed converter on failure.
var ErrConversion = errors.New("conv: cannot convert value")
