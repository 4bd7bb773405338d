package vector

import "fmt"

// Position is a place in a vector, as accepted by Insert and Erase.
// Both Iterator and ConstIterator are positions.
type Position[T any] interface {
	target() (*Vector[T], int)
}

// Iterator is a random-access position in a vector that allows reading
// and writing the element it refers to.
//
// Iterators are index based: they stay bound to the same index across
// reallocation. An iterator is dereferenceable while its index lies in
// [0, Len()); End() is not. Emptiness is decided by IsEmpty, never by
// comparing iterators.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

// ConstIterator is a random-access position that only allows reading.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, pos: 0}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.buf.Len()}
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (it Iterator[T]) target() (*Vector[T], int) { return it.v, it.pos }

// Index returns the element index the iterator refers to.
func (it Iterator[T]) Index() int { return it.pos }

// Get returns the element. It panics if the iterator is not
// dereferenceable.
func (it Iterator[T]) Get() T {
	return *it.v.Index(it.pos)
}

// Ref returns a pointer to the element. It panics if the iterator is not
// dereferenceable.
func (it Iterator[T]) Ref() *T {
	return it.v.Index(it.pos)
}

// Set replaces the element. It panics if the iterator is not
// dereferenceable.
func (it Iterator[T]) Set(value T) {
	*it.v.Index(it.pos) = value
}

// Next returns the iterator advanced by one.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator moved by n elements.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Distance returns the number of steps from other to it.
// Both iterators must belong to the same vector.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal reports whether both iterators refer to the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.pos == other.pos
}

// Less reports whether it comes before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}

// Const returns a read-only copy of the iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (it Iterator[T]) String() string {
	return fmt.Sprintf("vector.Iterator(%d)", it.pos)
}

func (c ConstIterator[T]) target() (*Vector[T], int) { return c.it.target() }

// Index returns the element index the iterator refers to.
func (c ConstIterator[T]) Index() int { return c.it.pos }

// Get returns the element. It panics if the iterator is not
// dereferenceable.
func (c ConstIterator[T]) Get() T { return c.it.Get() }

// Next returns the iterator advanced by one.
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.Add(1) }

// Prev returns the iterator moved back by one.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.Add(-1) }

// Add returns the iterator moved by n elements.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Add(n)}
}

// Distance returns the number of steps from other to c.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return c.it.Distance(other.it)
}

// Equal reports whether both iterators refer to the same position of the
// same vector.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

// Less reports whether c comes before other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return c.it.Less(other.it)
}

func (c ConstIterator[T]) String() string {
	return fmt.Sprintf("vector.ConstIterator(%d)", c.it.pos)
}

// locate resolves pos to an index of v in [0, last].
func (v *Vector[T]) locate(pos Position[T], last int) (int, error) {
	if pos == nil {
		return 0, fmt.Errorf("%w: nil position", ErrOutOfRange)
	}
	owner, i := pos.target()
	if owner != v {
		return 0, ErrForeignIterator
	}
	if i < 0 || i > last {
		return 0, fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, i, v.buf.Len())
	}
	return i, nil
}
