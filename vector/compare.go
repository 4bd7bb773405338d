package vector

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.Len() == b.Len() && slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return a.Len() == b.Len() && slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically. It returns -1, 0 or +1.
// A vector that is a strict prefix of another orders first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like Compare but orders elements with cmpFn.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmpFn func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmpFn)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a is less than or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return !LessOrEqual(a, b)
}

// GreaterOrEqual reports whether a is greater than or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
