package fn

import (
	"sync"
	"time"
)

// DebounceOptions configures [Debounce].
type DebounceOptions struct {
	// Leading invokes fn on the first Call of a burst.
	Leading bool

	// Trailing invokes fn with the latest argument once the burst has been
	// quiet for the wait duration.
	Trailing bool

	// MaxWait bounds how long a pending invocation may be postponed.
	// Zero means unbounded.
	MaxWait time.Duration
}

// DefaultDebounceOptions returns trailing-only options.
func DefaultDebounceOptions() DebounceOptions {
	return DebounceOptions{Trailing: true}
}

// ThrottleOptions configures [Throttle].
type ThrottleOptions struct {
	Leading  bool
	Trailing bool
}

// DefaultThrottleOptions enables both edges.
func DefaultThrottleOptions() ThrottleOptions {
	return ThrottleOptions{Leading: true, Trailing: true}
}

// Debouncer delays calls to a function until a burst of calls has settled.
// Create one with [Debounce] or [Throttle].
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration
	opts DebounceOptions

	mu       sync.Mutex
	timer    *time.Timer
	maxTimer *time.Timer
	seq      uint64
	maxSeq   uint64
	pending  bool
	arg      T
}

// Debounce returns a [Debouncer] that postpones fn until wait has elapsed
// since the last Call.
func Debounce[T any](fn func(T), wait time.Duration, opts DebounceOptions) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait, opts: opts}
}

// Throttle returns a [Debouncer] that invokes fn at most once per wait.
func Throttle[T any](fn func(T), wait time.Duration, opts ThrottleOptions) *Debouncer[T] {
	return Debounce(fn, wait, DebounceOptions{
		Leading:  opts.Leading,
		Trailing: opts.Trailing,
		MaxWait:  wait,
	})
}

// Call records arg as the latest argument and restarts the wait.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	d.arg = arg
	invoke := false
	if d.timer == nil {
		if d.opts.Leading {
			invoke = true
		} else {
			d.pending = true
		}
	} else {
		d.pending = true
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() { d.expire(seq) })

	if d.opts.MaxWait > 0 && d.maxTimer == nil {
		d.maxSeq++
		mseq := d.maxSeq
		d.maxTimer = time.AfterFunc(d.opts.MaxWait, func() { d.maxExpire(mseq) })
	}
	d.mu.Unlock()

	if invoke {
		d.fn(arg)
	}
}

// Cancel drops any pending invocation.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
}

// Flush immediately runs a pending invocation, if any, and ends the burst.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	run, arg := d.pending, d.arg
	d.reset()
	d.mu.Unlock()

	if run {
		d.fn(arg)
	}
}

// Pending reports whether a trailing invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) expire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	run, arg := d.pending && d.opts.Trailing, d.arg
	d.reset()
	d.mu.Unlock()

	if run {
		d.fn(arg)
	}
}

func (d *Debouncer[T]) maxExpire(mseq uint64) {
	d.mu.Lock()
	if mseq != d.maxSeq || d.maxTimer == nil {
		d.mu.Unlock()
		return
	}
	d.maxTimer = nil
	if !d.opts.Trailing {
		// Close the window so the next Call fires a new leading edge.
		d.reset()
		d.mu.Unlock()
		return
	}
	run, arg := d.pending, d.arg
	d.pending = false
	d.mu.Unlock()

	if run {
		d.fn(arg)
	}
}

// reset stops both timers; d.mu must be held.
func (d *Debouncer[T]) reset() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.maxTimer != nil {
		d.maxTimer.Stop()
		d.maxTimer = nil
	}
	d.seq++
	d.maxSeq++
	d.pending = false
}
