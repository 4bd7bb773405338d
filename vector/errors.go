package vector

import (
	"errors"

	"github.com/cwbudde/algo-vector/buffer"
)

var (
	// ErrOutOfRange reports an index or position outside the valid range.
	ErrOutOfRange = buffer.ErrOutOfRange
	// ErrAllocation reports that capacity could not be grown.
	ErrAllocation = buffer.ErrAllocation
	// ErrForeignIterator reports a position taken from a different vector.
	ErrForeignIterator = errors.New("vector: iterator belongs to another vector")
	// ErrSizeMismatch reports operands of different lengths.
	ErrSizeMismatch = errors.New("vector: size mismatch")
)
