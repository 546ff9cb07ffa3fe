package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-utilkit/arr"
	"github.com/hasbyte1/go-utilkit/collections"
)

// SortKey selects the ordering of [FilterData] results.
type SortKey string

const (
	SortName     SortKey = "name"
	SortCategory SortKey = "category"
	SortSince    SortKey = "since"
)

// ParseSortKey validates s. The empty string selects [SortName].
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(s)); k {
	case "":
		return SortName, nil
	case SortName, SortCategory, SortSince:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
}

// Query selects and orders entries.
type Query struct {
	// Search matches case-insensitively against name, signature,
	// description and tags.
	Search string

	// Category must equal the entry category exactly, case included. ""
	// and "all" match any.
	Category string

	// Tags must all be present on the entry.
	Tags []string

	// IncludeDeprecated keeps deprecated entries.
	IncludeDeprecated bool

	Sort SortKey
	Desc bool
}

// FilterData returns the entries matching q, sorted by q.Sort. Entries with
// equal sort keys are ordered by name. The input is not modified.
func FilterData(entries []Entry, q Query) []Entry {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	if category == "all" {
		category = ""
	}
	tags := arr.Compact(q.Tags)

	matched := collections.Filter(entries, func(e Entry, _ int) bool {
		if e.Deprecated && !q.IncludeDeprecated {
			return false
		}
		if category != "" && e.Category != category {
			return false
		}
		if !hasTags(e, tags) {
			return false
		}
		return search == "" || matchesSearch(e, search)
	})

	order := collections.Asc
	if q.Desc {
		order = collections.Desc
	}
	byName := collections.By(func(e Entry) string { return strings.ToLower(e.Name) }, collections.Asc)

	switch q.Sort {
	case SortCategory:
		return collections.OrderBy(matched,
			collections.By(func(e Entry) string { return e.Category }, order), byName)
	case SortSince:
		return collections.OrderBy(matched,
			func(a, b Entry) int {
				c := compareVersions(a.Since, b.Since)
				if q.Desc {
					return -c
				}
				return c
			}, byName)
	default:
		return collections.OrderBy(matched,
			collections.By(func(e Entry) string { return strings.ToLower(e.Name) }, order))
	}
}

func matchesSearch(e Entry, search string) bool {
	for _, field := range []string{e.Name, e.Signature, e.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return collections.Some(e.Tags, func(tag string, _ int) bool {
		return strings.Contains(strings.ToLower(tag), search)
	})
}

func hasTags(e Entry, want []string) bool {
	return collections.Every(want, func(tag string, _ int) bool {
		return collections.Some(e.Tags, func(have string, _ int) bool {
			return strings.EqualFold(have, tag)
		})
	})
}

// compareVersions orders dotted versions numerically; a missing version
// sorts first.
func compareVersions(a, b string) int {
	pa := strings.Split(strings.TrimPrefix(a, "v"), ".")
	pb := strings.Split(strings.TrimPrefix(b, "v"), ".")
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	case b == "":
		return 1
	}
	for i := range max(len(pa), len(pb)) {
		var x, y int
		if i < len(pa) {
			x, _ = strconv.Atoi(pa[i])
		}
		if i < len(pb) {
			y, _ = strconv.Atoi(pb[i])
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}
