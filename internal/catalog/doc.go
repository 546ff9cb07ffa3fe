// Package catalog loads, filters and graphs the documentation metadata of
// this module: one [Entry] per exported helper and one [Constant] per
// exported constant.
//
// Catalog files may be YAML, TOML or JSON and share one schema:
//
//	entries:
//	  - name: Chunk
//	    category: arr
//	    signature: "func Chunk[T any](items []T, size int) [][]T"
//	    description: Splits items into groups of size.
//	    since: 0.1.0
//	    tags: [slice, split]
//	constants:
//	  - name: Asc
//	    group: collections
//	    related: [Desc]
//
// [Default] returns the catalog embedded in the binary. [FilterData] powers
// the list views of cmd/utildoc and [Graph] produces node/link data for a
// force-directed view of the constants.
package catalog
