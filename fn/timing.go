package fn

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Delay blocks for d and then runs f. It returns ctx.Err() without running
// f if ctx is done first.
//
//	go fn.Delay(ctx, time.Second, refresh)
func Delay(ctx context.Context, d time.Duration, f func()) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		f()
		return nil
	}
}

// RateLimit wraps f with a token bucket allowing r calls per second with the
// given burst. The wrapper reports false, without calling f, when no token
// is available.
func RateLimit[T, R any](f func(T) R, r rate.Limit, burst int) func(T) (R, bool) {
	limiter := rate.NewLimiter(r, burst)
	return func(v T) (R, bool) {
		if !limiter.Allow() {
			var zero R
			return zero, false
		}
		return f(v), true
	}
}

// RateLimitWait is [RateLimit] blocking until a token is available or ctx
// is done.
func RateLimitWait[T, R any](f func(T) R, r rate.Limit, burst int) func(context.Context, T) (R, error) {
	limiter := rate.NewLimiter(r, burst)
	return func(ctx context.Context, v T) (R, error) {
		if err := limiter.Wait(ctx); err != nil {
			var zero R
			return zero, err
		}
		return f(v), nil
	}
}

var idCounter atomic.Uint64

// UniqueID returns prefix followed by a process-wide increasing number.
//
//	UniqueID("contact_") // → "contact_1", then "contact_2", ...
func UniqueID(prefix string) string {
	return prefix + strconv.FormatUint(idCounter.Add(1), 10)
}
