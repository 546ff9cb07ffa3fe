package strs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hasbyte1/go-utilkit/obj"
)

// placeholder matches {{ path }} and ${path}.
var placeholder = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}|\$\{\s*([^{}\s]+)\s*\}`)

// Template replaces {{ path }} and ${path} placeholders in tpl with values
// looked up in data using [obj.Get] path syntax. It returns [ErrMissingKey]
// for the first placeholder that does not resolve.
//
//	Template("Hello {{ user.name }}!", map[string]any{"user": map[string]any{"name": "Ada"}})
//	// → "Hello Ada!"
func Template(tpl string, data any) (string, error) {
	var missing error
	out := placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		path := placeholderPath(m)
		v, ok := obj.Lookup(data, path)
		if !ok {
			if missing == nil {
				missing = fmt.Errorf("%w: %q", ErrMissingKey, path)
			}
			return m
		}
		return fmt.Sprint(v)
	})
	if missing != nil {
		return "", missing
	}
	return out, nil
}

// TemplateOr is [Template] substituting fallback for unresolved placeholders.
func TemplateOr(tpl string, data any, fallback string) string {
	return placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		if v, ok := obj.Lookup(data, placeholderPath(m)); ok {
			return fmt.Sprint(v)
		}
		return fallback
	})
}

func placeholderPath(m string) string {
	sub := placeholder.FindStringSubmatch(m)
	if sub[1] != "" {
		return sub[1]
	}
	return strings.TrimSpace(sub[2])
}
