package fn

import "sync"

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Compose returns a function applying fns right to left.
//
//	Compose(f, g)(x) == f(g(x))
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Pipe returns a function applying fns left to right.
//
//	Pipe(f, g)(x) == g(f(x))
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// Negate returns the logical complement of pred.
func Negate[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Currying & partial application
// ─────────────────────────────────────────────────────────────────────────────

// Curry2 converts a two-argument function into a chain of single-argument
// functions.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 is [Curry2] for three arguments.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R { return f(a, b, c) }
		}
	}
}

// Uncurry2 is the inverse of [Curry2].
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Partial fixes the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// PartialRight fixes the last argument of f.
func PartialRight[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R { return f(a, b) }
}

// Flip swaps the arguments of f.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Call counting
// ─────────────────────────────────────────────────────────────────────────────

// Once returns a function that runs f on its first call and returns the
// cached result afterwards.
//
// Deprecated: use sync.OnceValue.
func Once[R any](f func() R) func() R {
	return sync.OnceValue(f)
}

// Before returns a function that invokes f while it has been called fewer
// than n times. Later calls return the result of the last invocation.
func Before[R any](n int, f func() R) func() R {
	var (
		mu    sync.Mutex
		calls int
		last  R
	)
	return func() R {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < n {
			last = f()
		}
		return last
	}
}

// After returns a function that invokes f only once it has been called n or
// more times. Earlier calls return the zero value.
func After[R any](n int, f func() R) func() R {
	var (
		mu    sync.Mutex
		calls int
	)
	return func() R {
		mu.Lock()
		calls++
		ready := calls >= n
		mu.Unlock()
		if !ready {
			var zero R
			return zero
		}
		return f()
	}
}
