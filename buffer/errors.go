package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked accessors when the index is not
	// inside the logical range [0, Len()).
	ErrOutOfRange = errors.New("buffer: index out of range")
	// ErrAllocation is returned when a larger block cannot be allocated.
	// The buffer keeps its previous block, length and capacity.
	ErrAllocation = errors.New("buffer: allocation failed")
)

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, length)
}

// allocate returns a zeroed block of n slots. Allocation panics raised by
// the runtime for impossible sizes are reported as ErrAllocation.
func allocate[T any](n int) (block []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			block = nil
			err = fmt.Errorf("%w: %d slots: %v", ErrAllocation, n, r)
		}
	}()
	return make([]T, n), nil
}
