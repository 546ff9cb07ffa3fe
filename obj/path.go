package obj

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path parsing
// ─────────────────────────────────────────────────────────────────────────────

// ParsePath splits a dot/bracket path into its segments.
//
//	ParsePath("a.b[0].c")    // → [a b 0 c]
//	ParsePath(`a["b.c"].d`)  // → [a b.c d]
//	ParsePath("")            // → []
func ParsePath(path string) []string {
	segments := make([]string, 0, strings.Count(path, ".")+1)
	if path == "" {
		return segments
	}
	var cur strings.Builder
	closed := false // previous token was a bracket segment
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			if !closed {
				segments = append(segments, cur.String())
			}
			cur.Reset()
			closed = false
		case '[':
			if cur.Len() > 0 {
				segments = append(segments, cur.String())
				cur.Reset()
			}
			seg, next := parseBracket(path, i+1)
			segments = append(segments, seg)
			i = next
			closed = true
		default:
			cur.WriteByte(c)
			closed = false
		}
	}
	if !closed {
		segments = append(segments, cur.String())
	}
	return segments
}

// parseBracket reads a bracket segment starting after '[' and returns the
// segment and the index of the closing ']'.
func parseBracket(path string, start int) (string, int) {
	if start < len(path) && (path[start] == '"' || path[start] == '\'') {
		quote := path[start]
		end := strings.IndexByte(path[start+1:], quote)
		if end >= 0 {
			seg := path[start+1 : start+1+end]
			closeAt := start + 1 + end + 1
			if closeAt < len(path) && path[closeAt] == ']' {
				return seg, closeAt
			}
		}
	}
	end := strings.IndexByte(path[start:], ']')
	if end < 0 {
		return path[start:], len(path)
	}
	return strings.TrimSpace(path[start : start+end]), start + end
}

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at path, or def[0] (or nil) when the path does not
// resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(obj any, path string, def ...any) any {
	return GetPath(obj, ParsePath(path), def...)
}

// GetPath is [Get] with a pre-split path. An empty path returns obj.
func GetPath(obj any, segments []string, def ...any) any {
	if v, ok := lookup(obj, segments); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Lookup returns the value at path and whether the path resolved.
// A path resolving to a nil value reports true.
func Lookup(obj any, path string) (any, bool) {
	return lookup(obj, ParsePath(path))
}

// Has reports whether path resolves in obj.
func Has(obj any, path string) bool {
	_, ok := lookup(obj, ParsePath(path))
	return ok
}

// HasAll reports whether every path resolves in obj.
func HasAll(obj any, paths ...string) bool {
	for _, p := range paths {
		if !Has(obj, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves in obj.
func HasAny(obj any, paths ...string) bool {
	for _, p := range paths {
		if Has(obj, p) {
			return true
		}
	}
	return false
}

func lookup(obj any, segments []string) (any, bool) {
	current := obj
	for _, seg := range segments {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step resolves one segment against current.
func step(current any, seg string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, ok := index(seg, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case nil:
		return nil, false
	}

	v := reflect.ValueOf(current)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		key, ok := mapKey(seg, v.Type().Key())
		if !ok {
			return nil, false
		}
		val := v.MapIndex(key)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(seg, v.Len())
		if !ok {
			return nil, false
		}
		return v.Index(i).Interface(), true
	case reflect.Struct:
		f, ok := field(v, seg)
		if !ok {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

func index(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// mapKey converts a path segment to a reflect key of type t.
func mapKey(seg string, t reflect.Type) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	}
	return reflect.Value{}, false
}

// field finds an exported struct field by name or json tag.
func field(v reflect.Value, seg string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if sf.Name == seg || (tag != "" && tag != "-" && tag == seg) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Set writes value into m at path, creating intermediate containers: a
// []any when the next segment is an integer, a map[string]any otherwise.
// Slices grow as needed; scalar values and nil maps in the way are
// replaced. Setting on a nil m fails with [ErrNilMap].
//
//	Set(m, "user.tags[2]", "new")
func Set(m map[string]any, path string, value any) error {
	if m == nil {
		return ErrNilMap
	}
	segments := ParsePath(path)
	if len(segments) == 0 {
		return ErrEmptyPath
	}
	_, err := setIn(m, segments, value)
	return err
}

func setIn(container any, segments []string, value any) (any, error) {
	if len(segments) == 0 {
		return value, nil
	}
	seg, rest := segments[0], segments[1:]
	switch c := container.(type) {
	case map[string]any:
		if c == nil {
			c = make(map[string]any)
		}
		child, err := setIn(containerOrNil(c[seg]), rest, value)
		if err != nil {
			return nil, err
		}
		c[seg] = child
		return c, nil
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndex, seg)
		}
		for len(c) <= i {
			c = append(c, nil)
		}
		child, err := setIn(containerOrNil(c[i]), rest, value)
		if err != nil {
			return nil, err
		}
		c[i] = child
		return c, nil
	default:
		if isIndex(seg) {
			return setIn([]any{}, segments, value)
		}
		return setIn(map[string]any{}, segments, value)
	}
}

func containerOrNil(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		return v
	}
	return nil
}

func isIndex(seg string) bool {
	i, err := strconv.Atoi(seg)
	return err == nil && i >= 0
}

// Unset removes the value at path from m and reports whether it existed.
// Slice elements are set to nil rather than removed, so sibling indices stay
// stable.
func Unset(m map[string]any, path string) bool {
	segments := ParsePath(path)
	if len(segments) == 0 {
		return false
	}
	parent, ok := lookup(m, segments[:len(segments)-1])
	if !ok {
		return false
	}
	last := segments[len(segments)-1]
	switch p := parent.(type) {
	case map[string]any:
		if _, ok := p[last]; !ok {
			return false
		}
		delete(p, last)
		return true
	case []any:
		i, ok := index(last, len(p))
		if !ok {
			return false
		}
		p[i] = nil
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Dot notation
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens a nested map[string]any into a single-level map using dot
// notation for the keys.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotFlatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map into nested maps. Unlike [Set], it
// never creates slices, so Undot(Dot(m)) == m for map-only documents.
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		undotSet(out, strings.Split(key, "."), val)
	}
	return out
}

func undotSet(m map[string]any, segments []string, value any) {
	if len(segments) == 1 {
		m[segments[0]] = value
		return
	}
	nested, ok := m[segments[0]].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[segments[0]] = nested
	}
	undotSet(nested, segments[1:], value)
}
