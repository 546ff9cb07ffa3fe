package conv

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

func wrap[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return v, nil
}

func must[T any](v T, _ error) T { return v }

// ─────────────────────────────────────────────────────────────────────────────
// Scalars
// ─────────────────────────────────────────────────────────────────────────────

// ToStringE converts v to a string. Numbers, bools, byte slices, errors
// and fmt.Stringer values are supported.
func ToStringE(v any) (string, error) { return wrap(cast.ToStringE(v)) }

// ToString is [ToStringE] ignoring errors.
func ToString(v any) string { return must(ToStringE(v)) }

// ToIntE converts v to an int. Strings are parsed as base-10 integers.
func ToIntE(v any) (int, error) { return wrap(cast.ToIntE(v)) }

// ToInt is [ToIntE] ignoring errors.
func ToInt(v any) int { return must(ToIntE(v)) }

// ToInt64E converts v to an int64.
func ToInt64E(v any) (int64, error) { return wrap(cast.ToInt64E(v)) }

// ToInt64 is [ToInt64E] ignoring errors.
func ToInt64(v any) int64 { return must(ToInt64E(v)) }

// ToFloatE converts v to a float64.
func ToFloatE(v any) (float64, error) { return wrap(cast.ToFloat64E(v)) }

// ToFloat is [ToFloatE] ignoring errors.
func ToFloat(v any) float64 { return must(ToFloatE(v)) }

// ToBoolE converts v to a bool. Strings accepted by strconv.ParseBool and
// non-zero numbers are true.
func ToBoolE(v any) (bool, error) { return wrap(cast.ToBoolE(v)) }

// ToBool is [ToBoolE] ignoring errors.
func ToBool(v any) bool { return must(ToBoolE(v)) }

// ─────────────────────────────────────────────────────────────────────────────
// Time
// ─────────────────────────────────────────────────────────────────────────────

// ToTimeE converts v to a time.Time. Strings in common layouts (RFC 3339,
// RFC 1123, "2006-01-02", ...) and Unix timestamps are supported.
func ToTimeE(v any) (time.Time, error) { return wrap(cast.ToTimeE(v)) }

// ToTime is [ToTimeE] ignoring errors.
func ToTime(v any) time.Time { return must(ToTimeE(v)) }

// ToDurationE converts v to a time.Duration. Strings are parsed with
// time.ParseDuration, bare numbers are nanoseconds.
func ToDurationE(v any) (time.Duration, error) { return wrap(cast.ToDurationE(v)) }

// ToDuration is [ToDurationE] ignoring errors.
func ToDuration(v any) time.Duration { return must(ToDurationE(v)) }

// ─────────────────────────────────────────────────────────────────────────────
// Containers
// ─────────────────────────────────────────────────────────────────────────────

// ToStringSliceE converts v to a []string. A plain string is split on
// whitespace.
func ToStringSliceE(v any) ([]string, error) { return wrap(cast.ToStringSliceE(v)) }

// ToStringSlice is [ToStringSliceE] ignoring errors.
func ToStringSlice(v any) []string { return must(ToStringSliceE(v)) }

// ToIntSliceE converts v to an []int.
func ToIntSliceE(v any) ([]int, error) { return wrap(cast.ToIntSliceE(v)) }

// ToIntSlice is [ToIntSliceE] ignoring errors.
func ToIntSlice(v any) []int { return must(ToIntSliceE(v)) }

// ToStringMapE converts v to a map[string]any. A string is decoded as a
// JSON object.
func ToStringMapE(v any) (map[string]any, error) { return wrap(cast.ToStringMapE(v)) }

// ToStringMap is [ToStringMapE] ignoring errors.
func ToStringMap(v any) map[string]any { return must(ToStringMapE(v)) }
