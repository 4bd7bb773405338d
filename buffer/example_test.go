package buffer_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vector/buffer"
)

func ExampleBuffer() {
	b := buffer.NewWithCapacity[int](4, 8)
	copy(b.Slice(), []int{1, 2, 3, 4})

	_ = b.Resize(6)
	b.ZeroRange(1, 5)

	fmt.Println(b.Slice())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [1 0 0 0 0 0]
	// 6 8
}

func ExampleBuffer_Reserve() {
	b := buffer.New[int64](2)

	err := b.Reserve(math.MaxInt)
	fmt.Println(errors.Is(err, buffer.ErrAllocation), b.Len(), b.Cap())

	// Output:
	// true 2 2
}
