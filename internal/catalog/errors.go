package catalog

import "errors"

var (
	// ErrUnsupportedFormat is returned when a catalog file has an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")

	// ErrEntryNotFound is returned by [Catalog.Lookup].
	ErrEntryNotFound = errors.New("catalog: entry not found")

	// ErrDuplicateEntry is returned when two entries or constants share a
	// name.
	ErrDuplicateEntry = errors.New("catalog: duplicate entry")

	// ErrInvalidEntry is returned for entries or constants without a name.
	ErrInvalidEntry = errors.New("catalog: invalid entry")

	// ErrUnknownSort is returned by [ParseSortKey].
	ErrUnknownSort = errors.New("catalog: unknown sort key")
)
