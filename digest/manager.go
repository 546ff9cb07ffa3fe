package digest

import (
	"encoding/hex"
	"fmt"
	"sync"
)

// Manager is a goroutine-safe registry of named [Hasher] drivers with a
// default.
//
// A [sync.RWMutex] serialises Register and SetDefault while allowing
// concurrent Sum calls.
type Manager struct {
	mu      sync.RWMutex
	drivers map[Algorithm]Hasher
	def     Algorithm
}

// NewManager creates an empty Manager whose default driver is def.
// Drivers must be registered before any digest is computed through it.
func NewManager(def Algorithm) *Manager {
	return &Manager{
		drivers: make(map[Algorithm]Hasher),
		def:     def,
	}
}

// NewDefaultManager creates a Manager with every built-in unkeyed driver
// registered and [Blake2b256] as the default.
func NewDefaultManager() *Manager {
	m := NewManager(Blake2b256)
	for _, alg := range []Algorithm{SHA3_256, SHA3_512, Blake2b256, Blake2b512, Blake2s256} {
		h, _ := New(alg)
		_ = m.Register(alg, h)
	}
	return m
}

// Register adds or replaces the driver stored under name.
func (m *Manager) Register(name Algorithm, h Hasher) error {
	if name == "" {
		return ErrEmptyAlgorithmName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name.
func (m *Manager) Driver(name Algorithm) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	return h, nil
}

// Has reports whether a driver is registered under name.
func (m *Manager) Has(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// SetDefault changes the default driver. name must already be registered.
func (m *Manager) SetDefault(name Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call Register first",
			ErrAlgorithmNotFound, name)
	}
	m.def = name
	return nil
}

// Default returns the name of the default driver.
func (m *Manager) Default() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Sum digests data with the default driver.
func (m *Manager) Sum(data []byte) ([]byte, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return nil, err
	}
	return h.Sum(data), nil
}

// Hex digests data with the default driver and returns lowercase hex.
func (m *Manager) Hex(data []byte) (string, error) {
	sum, err := m.Sum(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default algorithm %q has not been registered",
			ErrAlgorithmNotFound, m.def)
	}
	return h, nil
}
