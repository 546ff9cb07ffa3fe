package dates

import "errors"

var (
	// ErrUnsupportedToken is returned by [Parse] for layout tokens that have
	// no Go parsing equivalent.
	ErrUnsupportedToken = errors.New("dates: unsupported layout token")

	// ErrUnknownUnit is returned by [ParseUnit].
	ErrUnknownUnit = errors.New("dates: unknown unit")
)
