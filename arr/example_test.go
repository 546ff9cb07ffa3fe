package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-utilkit/arr"
)

func ExampleChunk() {
	for _, c := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleFlattenDeep() {
	fmt.Println(arr.FlattenDeep([]any{1, []any{2, []any{3, []int{4}}}}))
	// Output: [1 2 3 4]
}

func ExampleIntersection() {
	fmt.Println(arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}))
	// Output: [2 3]
}

func ExampleSortedIndex() {
	fmt.Println(arr.SortedIndex([]int{10, 20, 30}, 25))
	// Output: 2
}

func ExampleRange() {
	fmt.Println(arr.Range(0, 20, 5))
	// Output: [0 5 10 15]
}
