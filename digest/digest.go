package digest

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Hex returns the lowercase hex BLAKE2b-256 digest of data.
func Hex(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// String returns the lowercase hex BLAKE2b-256 digest of s.
func String(s string) string { return Hex([]byte(s)) }

// Key derives a stable cache key from v.
//
// v is written in a canonical form that records every dynamic type and
// every struct field, exported or not, with map entries sorted, and the
// result is digested with BLAKE2b-256. Values of different types never
// share a key, so Key(1) != Key(1.0). Pointers are followed; funcs and
// channels are identified by address.
//
//	digest.Key(map[string]int{"a": 1, "b": 2}) == digest.Key(map[string]int{"b": 2, "a": 1}) // true
func Key(v any) string {
	var b strings.Builder
	writeKey(&b, reflect.ValueOf(v), make(map[uintptr]bool))
	return String(b.String())
}

func writeKey(b *strings.Builder, v reflect.Value, seen map[uintptr]bool) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}
	b.WriteString(v.Type().String())
	b.WriteByte('(')
	defer b.WriteByte(')')

	switch v.Kind() {
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		b.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Slice:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		fallthrough
	case reflect.Array:
		for i := range v.Len() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, v.Index(i), seen)
		}
	case reflect.Map:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		pairs := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var kv strings.Builder
			writeKey(&kv, iter.Key(), seen)
			kv.WriteByte(':')
			writeKey(&kv, iter.Value(), seen)
			pairs = append(pairs, kv.String())
		}
		slices.Sort(pairs)
		b.WriteString(strings.Join(pairs, ","))
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(t.Field(i).Name)
			b.WriteByte('=')
			writeKey(b, v.Field(i), seen)
		}
	case reflect.Pointer:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		if seen[v.Pointer()] {
			b.WriteString("cycle")
			return
		}
		seen[v.Pointer()] = true
		writeKey(b, v.Elem(), seen)
		delete(seen, v.Pointer())
	case reflect.Interface:
		writeKey(b, v.Elem(), seen)
	default:
		// Func, Chan, UnsafePointer.
		fmt.Fprintf(b, "%#x", v.Pointer())
	}
}
