// Package fn provides higher-order function helpers.
//
// Timing wrappers ([Debounce], [Throttle], [Delay], [RateLimit]) and
// caches ([Memoize], [MemoizeBy]) own internal state and are safe for
// concurrent use. Combinators ([Compose], [Pipe], [Curry2], [Partial], ...)
// are pure and allocate nothing beyond the returned closure.
//
//	save := fn.Debounce(func(doc string) { store(doc) }, 500*time.Millisecond,
//		fn.DefaultDebounceOptions())
//	save.Call(draft) // runs once, 500ms after the last Call
package fn
