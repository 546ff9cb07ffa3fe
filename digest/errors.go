package digest

import "errors"

// Sentinel errors returned by digest operations.
//
// Use [errors.Is] for comparisons.
var (
	// ErrAlgorithmNotFound is returned by [Manager.Driver] and the Manager
	// helpers when the requested algorithm has not been registered.
	ErrAlgorithmNotFound = errors.New("digest: algorithm not found")

	// ErrEmptyAlgorithmName is returned by [Manager.Register] when the
	// supplied algorithm name is an empty string.
	ErrEmptyAlgorithmName = errors.New("digest: algorithm name must not be empty")

	// ErrNilHasher is returned by [Manager.Register] when a nil [Hasher] is
	// supplied.
	ErrNilHasher = errors.New("digest: hasher must not be nil")

	// ErrInvalidKey is returned by [NewKeyedBlake2b] when the key is empty or
	// longer than 64 bytes.
	ErrInvalidKey = errors.New("digest: invalid key length")
)
