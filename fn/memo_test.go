package fn_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-utilkit/fn"
)

func TestMemoize(t *testing.T) {
	var calls atomic.Int32
	square := fn.Memoize(func(n int) int {
		calls.Add(1)
		return n * n
	})

	assert.Equal(t, 16, square.Get(4))
	assert.Equal(t, 16, square.Get(4))
	assert.Equal(t, 25, square.Get(5))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, square.Len())

	square.Delete(4)
	assert.Equal(t, 16, square.Get(4))
	assert.Equal(t, int32(3), calls.Load())

	square.Clear()
	assert.Equal(t, 0, square.Len())
}

func TestMemoizeByDefaultResolver(t *testing.T) {
	var calls atomic.Int32
	sum := fn.MemoizeBy(func(xs []int) int {
		calls.Add(1)
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	}, nil)

	assert.Equal(t, 6, sum.Get([]int{1, 2, 3}))
	assert.Equal(t, 6, sum.Get([]int{1, 2, 3}))
	assert.Equal(t, 3, sum.Get([]int{3}))
	assert.Equal(t, int32(2), calls.Load())

	sum.Delete([]int{3})
	assert.Equal(t, 1, sum.Len())
	sum.Clear()
	assert.Equal(t, 0, sum.Len())
}

type coord struct{ x, y int }

func TestMemoizeByDefaultResolverDistinguishesArguments(t *testing.T) {
	sum := fn.MemoizeBy(func(c coord) int { return c.x + c.y }, nil)
	assert.Equal(t, 3, sum.Get(coord{1, 2}))
	assert.Equal(t, 30, sum.Get(coord{10, 20}))
	assert.Equal(t, 2, sum.Len())

	kind := fn.MemoizeBy(func(v any) string { return fmt.Sprintf("%T", v) }, nil)
	assert.Equal(t, "int", kind.Get(1))
	assert.Equal(t, "float64", kind.Get(1.0))
}

func TestMemoizeByCustomResolver(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	var calls atomic.Int32
	greet := fn.MemoizeBy(func(u user) string {
		calls.Add(1)
		return "hi " + u.Name
	}, func(u user) string { return u.Name })

	assert.Equal(t, "hi ada", greet.Get(user{ID: 1, Name: "ada"}))
	assert.Equal(t, "hi ada", greet.Get(user{ID: 2, Name: "ada"}))
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemoizeByConcurrentCallsShareComputation(t *testing.T) {
	var calls atomic.Int32
	slow := fn.MemoizeBy(func(s string) int {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return len(s)
	}, func(s string) string { return s })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 5, slow.Get("hello"))
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}
