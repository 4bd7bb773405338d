// Package vector provides Vector, a growable sequence container built on
// buffer.Buffer.
//
// Vector owns its buffer exclusively and decides when it must grow:
// PushBack and Insert double the capacity when the vector is full, starting
// from 1. Resize and Reserve grow exactly as far as requested. All memory
// work (allocation, relocation, shifting) is delegated to the buffer.
//
// Operations that can allocate return an error wrapping ErrAllocation when
// the block cannot be grown; the vector is left unchanged in that case.
// Checked accessors and positional operations report invalid positions
// with ErrOutOfRange, and iterators taken from another vector with
// ErrForeignIterator.
//
// A Vector is not safe for concurrent use. Distinct vectors are
// independent.
package vector
