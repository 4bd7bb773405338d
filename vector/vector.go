package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/cwbudde/algo-vector/buffer"
)

// Vector is a growable sequence of T with amortized O(1) PushBack.
//
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	buf buffer.Buffer[T]
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements.
func NewSized[T any](n int) *Vector[T] {
	return &Vector[T]{buf: *buffer.New[T](n)}
}

// NewFilled returns a vector of n copies of value.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	s := v.buf.Slice()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of returns a vector holding a copy of values, in order.
func Of[T any](values ...T) *Vector[T] {
	v := NewSized[T](len(values))
	copy(v.buf.Slice(), values)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.buf.Len()
}

// Cap returns the number of elements the vector can hold before it has
// to grow.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.buf.IsEmpty()
}

// Index returns a pointer to element i. The caller guarantees
// 0 <= i < Len(); otherwise Index panics.
func (v *Vector[T]) Index(i int) *T {
	return v.buf.Index(i)
}

// At returns element i, or an error wrapping ErrOutOfRange when i is not
// in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.buf.At(i)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("vector: at: %w", err)
	}
	return *p, nil
}

// Set replaces element i, or returns an error wrapping ErrOutOfRange when
// i is not in [0, Len()).
func (v *Vector[T]) Set(i int, value T) error {
	p, err := v.buf.At(i)
	if err != nil {
		return fmt.Errorf("vector: set: %w", err)
	}
	*p = value
	return nil
}

// Front returns the first element and whether the vector is non-empty.
func (v *Vector[T]) Front() (T, bool) {
	if v.IsEmpty() {
		var zero T
		return zero, false
	}
	return *v.buf.Index(0), true
}

// Back returns the last element and whether the vector is non-empty.
func (v *Vector[T]) Back() (T, bool) {
	if v.IsEmpty() {
		var zero T
		return zero, false
	}
	return *v.buf.Index(v.buf.Len() - 1), true
}

// Slice returns the elements as a slice aliasing the vector's storage.
// The slice is invalidated by any operation that grows the vector.
func (v *Vector[T]) Slice() []T {
	return v.buf.Slice()
}

// PushBack appends value. When the vector is full its capacity doubles
// first (from 0 it becomes 1).
func (v *Vector[T]) PushBack(value T) error {
	if err := v.growIfFull(); err != nil {
		return fmt.Errorf("vector: push back: %w", err)
	}
	n := v.buf.Len()
	if err := v.buf.Resize(n + 1); err != nil {
		return fmt.Errorf("vector: push back: %w", err)
	}
	*v.buf.Index(n) = value
	return nil
}

// PopBack removes the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.IsEmpty() {
		return
	}
	_ = v.buf.Resize(v.buf.Len() - 1)
}

// Insert inserts value before pos and returns an iterator to it.
// pos must come from v and lie in [Begin(), End()].
func (v *Vector[T]) Insert(pos Position[T], value T) (Iterator[T], error) {
	i, err := v.locate(pos, v.buf.Len())
	if err != nil {
		return Iterator[T]{}, fmt.Errorf("vector: insert: %w", err)
	}
	if err := v.InsertAt(i, value); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{v: v, pos: i}, nil
}

// InsertAt inserts value at index i, shifting later elements towards the
// end. i must lie in [0, Len()].
func (v *Vector[T]) InsertAt(i int, value T) error {
	n := v.buf.Len()
	if i < 0 || i > n {
		return fmt.Errorf("vector: insert: %w: index %d, length %d", ErrOutOfRange, i, n)
	}
	if err := v.growIfFull(); err != nil {
		return fmt.Errorf("vector: insert: %w", err)
	}
	if err := v.buf.Resize(n + 1); err != nil {
		return fmt.Errorf("vector: insert: %w", err)
	}
	if err := v.buf.CopyWithin(i+1, i, n-i); err != nil {
		return fmt.Errorf("vector: insert: %w", err)
	}
	*v.buf.Index(i) = value
	return nil
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place, which is End() when the last element was removed.
// pos must come from v and lie in [Begin(), End()).
func (v *Vector[T]) Erase(pos Position[T]) (Iterator[T], error) {
	i, err := v.locate(pos, v.buf.Len()-1)
	if err != nil {
		return Iterator[T]{}, fmt.Errorf("vector: erase: %w", err)
	}
	if err := v.EraseAt(i); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{v: v, pos: i}, nil
}

// EraseAt removes element i, shifting later elements towards the front.
// i must lie in [0, Len()).
func (v *Vector[T]) EraseAt(i int) error {
	n := v.buf.Len()
	if i < 0 || i >= n {
		return fmt.Errorf("vector: erase: %w: index %d, length %d", ErrOutOfRange, i, n)
	}
	if err := v.buf.CopyWithin(i, i+1, n-i-1); err != nil {
		return fmt.Errorf("vector: erase: %w", err)
	}
	return v.buf.Resize(n - 1)
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	_ = v.buf.Resize(0)
}

// Resize sets the length to n. Growing past the capacity reallocates to
// exactly n; new elements are zero values.
func (v *Vector[T]) Resize(n int) error {
	if err := v.buf.Resize(n); err != nil {
		return fmt.Errorf("vector: resize: %w", err)
	}
	return nil
}

// Reserve ensures the capacity is at least n without changing the length.
func (v *Vector[T]) Reserve(n int) error {
	if err := v.buf.Reserve(n); err != nil {
		return fmt.Errorf("vector: reserve: %w", err)
	}
	return nil
}

// Clone returns an independent deep copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{buf: *v.buf.Clone()}
}

// Take moves the contents of v into a new vector and leaves v empty.
func (v *Vector[T]) Take() *Vector[T] {
	moved := &Vector[T]{}
	moved.buf.Swap(&v.buf)
	return moved
}

// Assign replaces the contents of v with a deep copy of src.
// Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) {
	v.buf.Assign(&src.buf)
}

// MoveFrom replaces the contents of v with those of src and leaves src
// empty. Moving a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.buf.MoveFrom(&src.buf)
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
}

// All returns an iterator over index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.buf.Len(); i++ {
			if !yield(i, *v.buf.Index(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.buf.Len(); i++ {
			if !yield(*v.buf.Index(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.buf.Len() - 1; i >= 0; i-- {
			if !yield(i, *v.buf.Index(i)) {
				return
			}
		}
	}
}

// String formats the elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf.Slice())
}

func (v *Vector[T]) growIfFull() error {
	if c := v.buf.Cap(); v.buf.Len() == c {
		return v.buf.Reserve(nextCapacity(c))
	}
	return nil
}

// nextCapacity doubles c, starting from 1 and saturating at MaxInt.
func nextCapacity(c int) int {
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	default:
		return 2 * c
	}
}
