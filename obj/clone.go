package obj

import (
	"maps"
	"reflect"
)

// Clone returns a shallow copy of m. A nil map yields an empty map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m)
}

// CloneDeep returns a deep copy of v. Maps, slices, arrays, pointers,
// interfaces and exported struct fields are copied recursively; unexported
// struct fields, funcs and channels are copied shallowly. Pointer cycles are
// reproduced in the copy.
func CloneDeep[T any](v T) T {
	var out T
	src := reflect.ValueOf(&v).Elem()
	c := cloner{seen: make(map[ptrKey]reflect.Value)}
	reflect.ValueOf(&out).Elem().Set(c.clone(src))
	return out
}

type ptrKey struct {
	ptr uintptr
	typ reflect.Type
}

type cloner struct {
	seen map[ptrKey]reflect.Value
}

func (c cloner) clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(c.clone(v.Elem()))
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		key := ptrKey{v.Pointer(), v.Type()}
		if p, ok := c.seen[key]; ok {
			return p
		}
		p := reflect.New(v.Type().Elem())
		c.seen[key] = p
		p.Elem().Set(c.clone(v.Elem()))
		return p
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(c.clone(iter.Key()), c.clone(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if out.Field(i).CanSet() {
				out.Field(i).Set(c.clone(v.Field(i)))
			}
		}
		return out
	default:
		return v
	}
}
