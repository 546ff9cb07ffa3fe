package digest_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-utilkit/digest"
)

func TestNewDefaultManager(t *testing.T) {
	m := digest.NewDefaultManager()
	if m.Default() != digest.Blake2b256 {
		t.Fatalf("Default() = %s; want %s", m.Default(), digest.Blake2b256)
	}
	for _, alg := range []digest.Algorithm{digest.SHA3_256, digest.SHA3_512, digest.Blake2b256, digest.Blake2b512, digest.Blake2s256} {
		if !m.Has(alg) {
			t.Errorf("driver %s not registered", alg)
		}
	}
	got, err := m.Hex([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if got != digest.String("abc") {
		t.Fatalf("Manager.Hex = %s; want %s", got, digest.String("abc"))
	}
}

func TestManager_Register(t *testing.T) {
	m := digest.NewManager(digest.SHA3_256)
	if err := m.Register("", nil); !errors.Is(err, digest.ErrEmptyAlgorithmName) {
		t.Fatalf("expected ErrEmptyAlgorithmName, got %v", err)
	}
	if err := m.Register(digest.SHA3_256, nil); !errors.Is(err, digest.ErrNilHasher) {
		t.Fatalf("expected ErrNilHasher, got %v", err)
	}
	if _, err := m.Sum([]byte("x")); !errors.Is(err, digest.ErrAlgorithmNotFound) {
		t.Fatalf("Sum without drivers: expected ErrAlgorithmNotFound, got %v", err)
	}

	keyed, err := digest.NewKeyedBlake2b([]byte("secret"), 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Register("mac", keyed); err != nil {
		t.Fatal(err)
	}
	if err := m.SetDefault("mac"); err != nil {
		t.Fatal(err)
	}
	sum, err := m.Sum([]byte("x"))
	if err != nil || len(sum) != 16 {
		t.Fatalf("Sum = %x, %v; want 16 bytes", sum, err)
	}
}

func TestManager_SetDefaultUnknown(t *testing.T) {
	m := digest.NewDefaultManager()
	if err := m.SetDefault("nope"); !errors.Is(err, digest.ErrAlgorithmNotFound) {
		t.Fatalf("expected ErrAlgorithmNotFound, got %v", err)
	}
	if m.Default() != digest.Blake2b256 {
		t.Fatal("failed SetDefault must not change the default")
	}
}

func TestManager_Concurrent(t *testing.T) {
	m := digest.NewDefaultManager()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				_ = m.SetDefault(digest.SHA3_256)
				return
			}
			if _, err := m.Sum([]byte("concurrent")); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
