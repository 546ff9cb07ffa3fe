package is

import (
	"encoding/json"
	"errors"
	"math"
	"net/mail"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────────────────────
// Kinds
// ─────────────────────────────────────────────────────────────────────────────

func kind(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

// String reports whether v is a string.
func String(v any) bool { return kind(v) == reflect.String }

// Bool reports whether v is a bool.
func Bool(v any) bool { return kind(v) == reflect.Bool }

// Number reports whether v is an integer or floating point number.
func Number(v any) bool { return isInt(kind(v)) || Float(v) }

// Float reports whether v is a float32 or float64.
func Float(v any) bool {
	k := kind(v)
	return k == reflect.Float32 || k == reflect.Float64
}

// Integer reports whether v is an integer, or a finite float with no
// fractional part.
func Integer(v any) bool {
	if isInt(kind(v)) {
		return true
	}
	f, ok := toFloat(v)
	return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v any) (float64, bool) {
	if !Float(v) {
		return 0, false
	}
	return reflect.ValueOf(v).Float(), true
}

// Func reports whether v is a function.
func Func(v any) bool { return kind(v) == reflect.Func }

// Slice reports whether v is a slice or an array.
func Slice(v any) bool {
	k := kind(v)
	return k == reflect.Slice || k == reflect.Array
}

// Map reports whether v is a map.
func Map(v any) bool { return kind(v) == reflect.Map }

// PlainObject reports whether v is a map with string keys, the shape of a
// decoded JSON object.
func PlainObject(v any) bool {
	return Map(v) && reflect.TypeOf(v).Key().Kind() == reflect.String
}

// Struct reports whether v is a struct value.
func Struct(v any) bool { return kind(v) == reflect.Struct }

// Pointer reports whether v is a pointer, nil or not.
func Pointer(v any) bool { return kind(v) == reflect.Pointer }

// Time reports whether v is a time.Time or a non-nil *time.Time.
func Time(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// Error reports whether v implements error.
func Error(v any) bool {
	_, ok := v.(error)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Values
// ─────────────────────────────────────────────────────────────────────────────

// Nil reports whether v is nil, including typed nil pointers, maps, slices,
// channels, functions and interfaces.
func Nil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.Interface, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Empty reports whether v is nil, a zero-length string, slice, array, map or
// channel, or any other zero value.
func Empty(v any) bool {
	if Nil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return rv.IsZero()
}

// Zero reports whether v is nil or the zero value of its type.
func Zero(v any) bool {
	return v == nil || reflect.ValueOf(v).IsZero()
}

// Equal reports whether a and b are deeply equal.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// NaN reports whether v is a floating point NaN.
func NaN(v any) bool {
	f, ok := toFloat(v)
	return ok && math.IsNaN(f)
}

// Finite reports whether v is a number that is neither infinite nor NaN.
func Finite(v any) bool {
	if isInt(kind(v)) {
		return true
	}
	f, ok := toFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ─────────────────────────────────────────────────────────────────────────────
// String formats
// ─────────────────────────────────────────────────────────────────────────────

// UUID reports whether s is a UUID in any form accepted by uuid.Parse.
func UUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// JSON reports whether s is valid JSON.
func JSON(s string) bool { return json.Valid([]byte(s)) }

// Email reports whether s is a bare RFC 5322 address, without a display
// name or angle brackets.
func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// ErrorIs is errors.Is for values of static type any.
func ErrorIs(v any, target error) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, target)
}
