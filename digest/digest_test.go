package digest_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/hasbyte1/go-utilkit/digest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Built-in drivers
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_KnownVectors(t *testing.T) {
	cases := []struct {
		alg  digest.Algorithm
		want string
	}{
		{digest.SHA3_256, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{digest.Blake2b256, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
	}
	for _, tc := range cases {
		h, err := digest.New(tc.alg)
		if err != nil {
			t.Fatalf("New(%s): %v", tc.alg, err)
		}
		if got := hex.EncodeToString(h.Sum(nil)); got != tc.want {
			t.Errorf("%s(\"\") = %s; want %s", tc.alg, got, tc.want)
		}
	}
}

func TestNew_Sizes(t *testing.T) {
	sizes := map[digest.Algorithm]int{
		digest.SHA3_256:   32,
		digest.SHA3_512:   64,
		digest.Blake2b256: 32,
		digest.Blake2b512: 64,
		digest.Blake2s256: 32,
	}
	for alg, size := range sizes {
		h, err := digest.New(alg)
		if err != nil {
			t.Fatalf("New(%s): %v", alg, err)
		}
		if h.Size() != size || len(h.Sum([]byte("x"))) != size {
			t.Errorf("%s: size %d, sum len %d; want %d", alg, h.Size(), len(h.Sum([]byte("x"))), size)
		}
		if h.Algorithm() != alg {
			t.Errorf("Algorithm() = %s; want %s", h.Algorithm(), alg)
		}
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := digest.New("md4")
	if !errors.Is(err, digest.ErrAlgorithmNotFound) {
		t.Fatalf("expected ErrAlgorithmNotFound, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Keyed BLAKE2b
// ──────────────────────────────────────────────────────────────────────────────

func TestKeyedBlake2b(t *testing.T) {
	a, err := digest.NewKeyedBlake2b([]byte("key-a"), 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := digest.NewKeyedBlake2b([]byte("key-b"), 0)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("payload")
	if bytes.Equal(a.Sum(msg), b.Sum(msg)) {
		t.Fatal("different keys produced the same digest")
	}
	if !bytes.Equal(a.Sum(msg), a.Sum(msg)) {
		t.Fatal("keyed digest is not deterministic")
	}
	if a.Size() != 32 || a.Algorithm() != digest.KeyedBlake2b {
		t.Fatalf("unexpected size/algorithm: %d %s", a.Size(), a.Algorithm())
	}
}

func TestKeyedBlake2b_InvalidKey(t *testing.T) {
	for _, key := range [][]byte{nil, make([]byte, 65)} {
		if _, err := digest.NewKeyedBlake2b(key, 32); !errors.Is(err, digest.ErrInvalidKey) {
			t.Errorf("key len %d: expected ErrInvalidKey, got %v", len(key), err)
		}
	}
	if _, err := digest.NewKeyedBlake2b([]byte("k"), 65); err == nil {
		t.Error("size 65 should be rejected")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Package helpers
// ──────────────────────────────────────────────────────────────────────────────

func TestHexAndString(t *testing.T) {
	if digest.String("abc") != digest.Hex([]byte("abc")) {
		t.Fatal("String and Hex disagree")
	}
	if len(digest.String("abc")) != 64 {
		t.Fatalf("hex length = %d; want 64", len(digest.String("abc")))
	}
}

func TestKey_MapOrderIndependent(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2, "c": 3}
	b := map[string]int{"c": 3, "b": 2, "a": 1}
	if digest.Key(a) != digest.Key(b) {
		t.Fatal("Key should not depend on map insertion order")
	}
	if digest.Key(a) == digest.Key(map[string]int{"a": 1}) {
		t.Fatal("different values produced the same key")
	}
}

func TestKey_Channel(t *testing.T) {
	ch := make(chan int)
	if digest.Key(ch) != digest.Key(ch) {
		t.Fatal("Key of the same channel should be stable")
	}
	if digest.Key(ch) == digest.Key(make(chan int)) {
		t.Fatal("distinct channels produced the same key")
	}
}

type point struct{ x, y int }

type node struct {
	Name string
	Next *node
}

func TestKey_DistinguishesTypes(t *testing.T) {
	if digest.Key(1) == digest.Key(1.0) {
		t.Fatal("int and float64 produced the same key")
	}
	if digest.Key(int32(1)) == digest.Key(int64(1)) {
		t.Fatal("int32 and int64 produced the same key")
	}
	if digest.Key([]any{1}) == digest.Key([]any{1.0}) {
		t.Fatal("nested int and float64 produced the same key")
	}
	if digest.Key("1") == digest.Key(1) {
		t.Fatal("string and int produced the same key")
	}
	if digest.Key(nil) == digest.Key([]int(nil)) {
		t.Fatal("untyped and typed nil produced the same key")
	}
}

func TestKey_UnexportedFields(t *testing.T) {
	if digest.Key(point{1, 2}) == digest.Key(point{10, 20}) {
		t.Fatal("unexported fields were ignored")
	}
	if digest.Key(point{1, 2}) != digest.Key(point{1, 2}) {
		t.Fatal("equal structs produced different keys")
	}
	if digest.Key(&point{1, 2}) != digest.Key(&point{1, 2}) {
		t.Fatal("pointers to equal structs produced different keys")
	}
}

func TestKey_Cycle(t *testing.T) {
	n := &node{Name: "a"}
	n.Next = n
	if digest.Key(n) == "" {
		t.Fatal("cyclic value produced no key")
	}
	m := &node{Name: "b"}
	m.Next = m
	if digest.Key(n) == digest.Key(m) {
		t.Fatal("different cyclic values produced the same key")
	}
}
