package digest

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a digest algorithm.
type Algorithm string

const (
	// SHA3_256 selects SHA3-256 (32-byte digest).
	SHA3_256 Algorithm = "sha3-256"
	// SHA3_512 selects SHA3-512 (64-byte digest).
	SHA3_512 Algorithm = "sha3-512"
	// Blake2b256 selects BLAKE2b-256 (32-byte digest). It is the default.
	Blake2b256 Algorithm = "blake2b-256"
	// Blake2b512 selects BLAKE2b-512 (64-byte digest).
	Blake2b512 Algorithm = "blake2b-512"
	// Blake2s256 selects BLAKE2s-256 (32-byte digest).
	Blake2s256 Algorithm = "blake2s-256"
	// KeyedBlake2b identifies hashers built by [NewKeyedBlake2b].
	KeyedBlake2b Algorithm = "blake2b-keyed"
)

// Hasher is satisfied by every digest driver.
//
// Implementations must be safe for concurrent use: Sum must not retain or
// share state between calls.
type Hasher interface {
	// Sum returns the digest of data.
	Sum(data []byte) []byte

	// Algorithm returns the algorithm implemented by this hasher.
	Algorithm() Algorithm

	// Size returns the digest length in bytes.
	Size() int
}

// funcHasher adapts a one-shot sum function to [Hasher].
type funcHasher struct {
	alg  Algorithm
	size int
	sum  func([]byte) []byte
}

func (h funcHasher) Sum(data []byte) []byte { return h.sum(data) }
func (h funcHasher) Algorithm() Algorithm   { return h.alg }
func (h funcHasher) Size() int              { return h.size }

// New returns the built-in unkeyed hasher for alg, or
// [ErrAlgorithmNotFound] when alg is not one of the built-in algorithms.
func New(alg Algorithm) (Hasher, error) {
	switch alg {
	case SHA3_256:
		return funcHasher{alg, 32, func(b []byte) []byte { s := sha3.Sum256(b); return s[:] }}, nil
	case SHA3_512:
		return funcHasher{alg, 64, func(b []byte) []byte { s := sha3.Sum512(b); return s[:] }}, nil
	case Blake2b256:
		return funcHasher{alg, blake2b.Size256, func(b []byte) []byte { s := blake2b.Sum256(b); return s[:] }}, nil
	case Blake2b512:
		return funcHasher{alg, blake2b.Size, func(b []byte) []byte { s := blake2b.Sum512(b); return s[:] }}, nil
	case Blake2s256:
		return funcHasher{alg, blake2s.Size, func(b []byte) []byte { s := blake2s.Sum256(b); return s[:] }}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, alg)
	}
}

// KeyedHasher is a BLAKE2b MAC. Two hashers with different keys produce
// unrelated digests for the same input.
//
// KeyedHasher is immutable after construction and safe for concurrent use.
type KeyedHasher struct {
	key  []byte
	size int
}

// NewKeyedBlake2b builds a keyed BLAKE2b hasher producing size-byte digests.
// key must be 1–64 bytes; size must be 1–64 (0 selects 32).
func NewKeyedBlake2b(key []byte, size int) (*KeyedHasher, error) {
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: got %d bytes, want 1-%d", ErrInvalidKey, len(key), blake2b.Size)
	}
	if size == 0 {
		size = blake2b.Size256
	}
	if size < 1 || size > blake2b.Size {
		return nil, fmt.Errorf("digest: blake2b size %d must be in [1, %d]", size, blake2b.Size)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedHasher{key: k, size: size}, nil
}

// Sum returns the keyed digest of data.
func (h *KeyedHasher) Sum(data []byte) []byte {
	// blake2b.New only fails on invalid size or key, both checked above.
	d, err := blake2b.New(h.size, h.key)
	if err != nil {
		panic(err)
	}
	d.Write(data)
	return d.Sum(nil)
}

// Algorithm returns [KeyedBlake2b].
func (h *KeyedHasher) Algorithm() Algorithm { return KeyedBlake2b }

// Size returns the digest length in bytes.
func (h *KeyedHasher) Size() int { return h.size }
