// Package arr provides standalone, generic helper functions for Go slices:
// access, restructuring, set algebra and binary search over sorted input.
//
// All helpers operate on plain []T values and never mutate their input:
//
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)        // → [[1 2] [3 4] [5]]
//	uniq   := arr.Uniq([]string{"a", "b", "a"})          // → [a b]
//	both   := arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
//	i      := arr.SortedIndex([]int{10, 20, 30}, 25)     // → 2
//
// # Set operations
//
// Set helpers preserve the order of first occurrence in the first input and
// come in two flavours: a comparable version ([Uniq], [Union], [Difference])
// and a By version that compares on a key extracted by a function
// ([UniqBy], [UnionBy], [DifferenceBy]).
//
// # Nested slices
//
// [Flatten] removes one level of nesting from a typed [][]T. [FlattenDeep]
// and [FlattenDepth] accept any value and use reflection, so they also
// handle mixed []any structures.
package arr
