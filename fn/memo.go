package fn

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hasbyte1/go-utilkit/digest"
)

// Memo caches the results of a single-argument function by key.
type Memo[K comparable, V any] struct {
	fn func(K) V

	mu    sync.RWMutex
	cache map[K]V
}

// Memoize returns a [Memo] caching fn by its argument.
func Memoize[K comparable, V any](fn func(K) V) *Memo[K, V] {
	return &Memo[K, V]{fn: fn, cache: make(map[K]V)}
}

// Get returns the cached result for k, computing it on first use.
func (m *Memo[K, V]) Get(k K) V {
	m.mu.RLock()
	v, ok := m.cache[k]
	m.mu.RUnlock()
	if ok {
		return v
	}

	v = m.fn(k)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cache[k]; ok {
		return cached
	}
	m.cache[k] = v
	return v
}

// Delete evicts k.
func (m *Memo[K, V]) Delete(k K) {
	m.mu.Lock()
	delete(m.cache, k)
	m.mu.Unlock()
}

// Clear evicts every entry.
func (m *Memo[K, V]) Clear() {
	m.mu.Lock()
	clear(m.cache)
	m.mu.Unlock()
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// MemoBy caches the results of a function whose argument is not comparable,
// keyed by a resolver. Concurrent first calls for the same key share one
// computation.
type MemoBy[A, V any] struct {
	fn       func(A) V
	resolver func(A) string
	group    singleflight.Group

	mu    sync.RWMutex
	cache map[string]V
}

// MemoizeBy returns a [MemoBy] caching fn under resolver(arg). A nil
// resolver uses [digest.Key].
func MemoizeBy[A, V any](fn func(A) V, resolver func(A) string) *MemoBy[A, V] {
	if resolver == nil {
		resolver = func(a A) string { return digest.Key(a) }
	}
	return &MemoBy[A, V]{fn: fn, resolver: resolver, cache: make(map[string]V)}
}

// Get returns the cached result for a, computing it on first use.
func (m *MemoBy[A, V]) Get(a A) V {
	key := m.resolver(a)
	if v, ok := m.lookup(key); ok {
		return v
	}
	res, _, _ := m.group.Do(key, func() (any, error) {
		if v, ok := m.lookup(key); ok {
			return v, nil
		}
		v := m.fn(a)
		m.mu.Lock()
		m.cache[key] = v
		m.mu.Unlock()
		return v, nil
	})
	v, _ := res.(V)
	return v
}

func (m *MemoBy[A, V]) lookup(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.cache[key]
	return v, ok
}

// Delete evicts the entry for a.
func (m *MemoBy[A, V]) Delete(a A) {
	key := m.resolver(a)
	m.mu.Lock()
	delete(m.cache, key)
	m.mu.Unlock()
	m.group.Forget(key)
}

// Clear evicts every entry.
func (m *MemoBy[A, V]) Clear() {
	m.mu.Lock()
	clear(m.cache)
	m.mu.Unlock()
}

// Len returns the number of cached entries.
func (m *MemoBy[A, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}
