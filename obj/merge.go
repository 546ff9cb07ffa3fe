package obj

// Customizer decides how [MergeWith] combines a destination and source
// value. Returning handled=false falls back to the default deep merge.
type Customizer func(key string, dst, src any) (merged any, handled bool)

// Merge deep-merges each src into dst in order and returns dst.
//
// Nested map[string]any values are merged recursively and []any values are
// merged index by index; any other source value replaces the destination
// value. Source values are deep-copied, so dst never aliases a source.
//
//	Merge(map[string]any{"a": map[string]any{"x": 1}},
//	      map[string]any{"a": map[string]any{"y": 2}})
//	// → {"a": {"x": 1, "y": 2}}
func Merge(dst map[string]any, srcs ...map[string]any) map[string]any {
	return MergeWith(dst, nil, srcs...)
}

// MergeWith is [Merge] consulting fn before merging each key. fn may be nil.
func MergeWith(dst map[string]any, fn Customizer, srcs ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range srcs {
		mergeMap(dst, src, fn)
	}
	return dst
}

func mergeMap(dst, src map[string]any, fn Customizer) {
	for k, sv := range src {
		dv, exists := dst[k]
		if fn != nil {
			if merged, ok := fn(k, dv, sv); ok {
				dst[k] = merged
				continue
			}
		}
		if !exists {
			dst[k] = CloneDeep(sv)
			continue
		}
		dst[k] = mergeValue(dv, sv, fn)
	}
}

func mergeValue(dv, sv any, fn Customizer) any {
	switch s := sv.(type) {
	case map[string]any:
		if d, ok := dv.(map[string]any); ok {
			mergeMap(d, s, fn)
			return d
		}
	case []any:
		if d, ok := dv.([]any); ok {
			for i, item := range s {
				if i < len(d) {
					d[i] = mergeValue(d[i], item, fn)
				} else {
					d = append(d, CloneDeep(item))
				}
			}
			return d
		}
	}
	return CloneDeep(sv)
}

// Defaults fills keys missing from dst with values from each src, in order,
// and returns dst. Existing keys are never overwritten.
func Defaults(dst map[string]any, srcs ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = CloneDeep(v)
			}
		}
	}
	return dst
}

// DefaultsDeep is [Defaults] recursing into nested map[string]any values.
func DefaultsDeep(dst map[string]any, srcs ...map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}
	for _, src := range srcs {
		for k, v := range src {
			existing, ok := dst[k]
			if !ok {
				dst[k] = CloneDeep(v)
				continue
			}
			dm, dok := existing.(map[string]any)
			sm, sok := v.(map[string]any)
			if dok && sok {
				DefaultsDeep(dm, sm)
			}
		}
	}
	return dst
}
