package vector

import "github.com/cwbudde/algo-vector/buffer"

// Reservation carries a capacity hint for NewReserved.
type Reservation struct {
	capacity int
}

// Reserve returns a Reservation for the given capacity.
// Negative values are treated as 0.
func Reserve(capacity int) Reservation {
	if capacity < 0 {
		capacity = 0
	}
	return Reservation{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r Reservation) Capacity() int {
	return r.capacity
}

// NewReserved returns an empty vector with the capacity requested by r.
func NewReserved[T any](r Reservation) *Vector[T] {
	return &Vector[T]{buf: *buffer.NewWithCapacity[T](0, r.capacity)}
}
