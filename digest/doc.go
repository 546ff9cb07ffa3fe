// Package digest computes content digests with a pluggable set of
// algorithms backed by golang.org/x/crypto.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. Five unkeyed drivers
// ship with this package:
//
//   - [SHA3_256] and [SHA3_512] (FIPS 202)
//   - [Blake2b256] and [Blake2b512] (fast on 64-bit platforms)
//   - [Blake2s256] (fast on 32-bit and small inputs)
//
// plus [NewKeyedBlake2b], a keyed BLAKE2b MAC for tamper-evident digests.
//
// The [Manager] is a named driver registry with a default driver:
//
//	m := digest.NewDefaultManager() // BLAKE2b-256 default
//	sum, _ := m.Hex([]byte("hello"))
//	sha, _ := m.Driver(digest.SHA3_256)
//
// # Value keys
//
// [Key] derives a stable string key from any value. Dynamic types and
// unexported struct fields are part of the key and map entries are sorted,
// so two maps with the same contents always produce the same key while 1
// and 1.0 do not. The fn package uses it as the default cache key for
// memoized functions that take non-comparable arguments.
package digest
