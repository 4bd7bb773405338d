package buffer

// Buffer exclusively owns a contiguous block of T. The block holds Cap()
// slots, of which the first Len() are live.
//
// The zero value is an empty buffer ready for use.
type Buffer[T any] struct {
	block []T // len(block) is the capacity
	size  int
}

// New returns a Buffer holding size zero-valued elements, with capacity
// equal to size.
func New[T any](size int) *Buffer[T] {
	return NewWithCapacity[T](size, size)
}

// NewWithCapacity returns a Buffer holding size zero-valued elements in a
// block of capacity slots. Negative arguments are treated as 0 and a
// capacity below size is raised to size.
func NewWithCapacity[T any](size, capacity int) *Buffer[T] {
	if size < 0 {
		size = 0
	}
	if capacity < size {
		capacity = size
	}
	b := &Buffer[T]{size: size}
	if capacity > 0 {
		b.block = make([]T, capacity)
	}
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.block)
}

// IsEmpty reports whether the buffer holds no live elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// Index returns a pointer to element i without an error result.
// The caller guarantees 0 <= i < Len(); otherwise Index panics.
func (b *Buffer[T]) Index(i int) *T {
	return &b.block[:b.size][i]
}

// At returns a pointer to element i, or an error wrapping ErrOutOfRange
// when i is not in [0, Len()).
func (b *Buffer[T]) At(i int) (*T, error) {
	if i < 0 || i >= b.size {
		return nil, outOfRange(i, b.size)
	}
	return &b.block[i], nil
}

// Slice returns the live elements. The slice aliases the owned block and
// is invalidated by the next reallocation.
func (b *Buffer[T]) Slice() []T {
	return b.block[:b.size:b.size]
}

// Reserve ensures the capacity is at least n, preserving live elements.
// If the current capacity is already >= n this is a no-op. On allocation
// failure the buffer is unchanged and the error wraps ErrAllocation.
func (b *Buffer[T]) Reserve(n int) error {
	if n <= len(b.block) {
		return nil
	}
	grown, err := allocate[T](n)
	if err != nil {
		return err
	}
	copy(grown, b.block[:b.size])
	b.block = grown
	return nil
}

// Resize sets the length to n, reusing existing capacity when possible and
// otherwise reserving exactly n slots. Elements beyond the previous length
// are zeroed. Negative n is treated as 0.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	if err := b.Reserve(n); err != nil {
		return err
	}
	oldLen := b.size
	b.size = n
	switch {
	case n > oldLen:
		// Zero newly exposed slots that may hold stale data from a
		// previous shrink.
		clear(b.block[oldLen:n])
	case n < oldLen:
		clear(b.block[n:oldLen])
	}
	return nil
}

// CopyWithin copies n live elements starting at src to dst. The ranges
// may overlap. Both ranges must lie inside [0, Len()).
func (b *Buffer[T]) CopyWithin(dst, src, n int) error {
	if n <= 0 {
		return nil
	}
	if src < 0 || src+n > b.size {
		return outOfRange(src+n-1, b.size)
	}
	if dst < 0 || dst+n > b.size {
		return outOfRange(dst+n-1, b.size)
	}
	copy(b.block[dst:dst+n], b.block[src:src+n])
	return nil
}

// ZeroRange sets elements in [start, end) to the zero value.
// Indices are clamped to the live range.
func (b *Buffer[T]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > b.size {
		end = b.size
	}
	if start >= end {
		return
	}
	clear(b.block[start:end])
}

// Clone returns a deep copy of the buffer. Live elements are copied and
// the capacity is replicated exactly.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{size: b.size}
	if len(b.block) > 0 {
		c.block = make([]T, len(b.block))
		copy(c.block, b.block[:b.size])
	}
	return c
}

// Take moves the contents of b into a new Buffer in O(1) and leaves b
// empty.
func (b *Buffer[T]) Take() *Buffer[T] {
	moved := &Buffer[T]{}
	moved.Swap(b)
	return moved
}

// Assign replaces the contents of b with a deep copy of src.
// Assigning a buffer to itself is a no-op.
func (b *Buffer[T]) Assign(src *Buffer[T]) {
	if src == b {
		return
	}
	c := src.Clone()
	b.block, b.size = c.block, c.size
}

// MoveFrom releases the block of b, adopts the block of src and leaves src
// empty. Moving a buffer into itself is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if src == b {
		return
	}
	b.Release()
	b.Swap(src)
}

// Swap exchanges the contents of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
	b.size, other.size = other.size, b.size
}

// Release drops the owned block. The buffer is empty afterwards and may be
// reused.
func (b *Buffer[T]) Release() {
	b.block = nil
	b.size = 0
}
