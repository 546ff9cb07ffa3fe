// Command utildoc browses the documentation catalog of go-utilkit: it lists
// and searches helpers, shows one helper in detail, summarises categories
// and exports the constants graph as JSON for force-directed renderers.
//
// Usage:
//
//	utildoc list --category strs --search case
//	utildoc show Chunk
//	utildoc categories
//	utildoc graph > constants.json
//	utildoc watch --catalog ./docs/catalog.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
