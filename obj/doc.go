// Package obj provides helpers for nested map[string]any documents and
// other keyed data: path-based get/set/has, deep merge and clone, and key and
// value transforms.
//
// # Paths
//
// Paths use dot notation with optional bracket segments:
//
//	"user.address.city"
//	"users[0].name"
//	`headers["content-type"]`
//
// [Get], [Has] and [Lookup] read through map[string]any, []any, any other
// map or slice type, pointers, and exported struct fields (matched by field
// name or json tag). [Set] and [Unset] write to map[string]any / []any trees
// and create intermediate containers as needed:
//
//	m := map[string]any{}
//	obj.Set(m, "a.b[1].c", 3)
//	// m == {"a": {"b": [nil, {"c": 3}]}}
//
// # Deep copies
//
// [Merge] copies source values deeply, so the destination never aliases a
// source. [CloneDeep] works on any type via reflection and preserves pointer
// cycles.
package obj
