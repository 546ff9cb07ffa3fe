package mathx

import "errors"

// ErrInvalidSize is returned by [ParseBytes] for unparsable size strings.
var ErrInvalidSize = errors.New("mathx: invalid size")
