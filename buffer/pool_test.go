package buffer

import (
	"errors"
	"math"
	"testing"
)

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool[float64]()

	b, err := p.Get(8)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}

	for i, v := range b.Slice() {
		if v != 0 {
			t.Fatalf("Slice()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool[int]()

	// Get, write data, return.
	b, _ := p.Get(4)
	copy(b.Slice(), []int{42, 43, 44, 45})
	p.Put(b)

	// Get again: zeroed regardless of reuse, shorter or longer.
	for _, n := range []int{2, 4, 6} {
		b2, err := p.Get(n)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range b2.Slice() {
			if v != 0 {
				t.Fatalf("Get(%d): reused Slice()[%d] = %v, want 0", n, i, v)
			}
		}
		p.Put(b2)
	}
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[int]()
	p.Put(nil) // must not panic
}

func TestPoolReleasesOversizedBuffers(t *testing.T) {
	p := NewPool[int](WithMaxRetainedCapacity(4))
	b := New[int](16)
	p.Put(b)
	if b.Cap() != 0 {
		t.Fatalf("Cap() = %d after Put of oversized buffer, want 0", b.Cap())
	}
}

func TestPoolMinCapacity(t *testing.T) {
	p := NewPool[int](WithMinCapacity(32))
	b, err := p.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if b.Cap() < 32 {
		t.Fatalf("Cap() = %d, want >= 32", b.Cap())
	}
}

func TestPoolGetAllocationFailure(t *testing.T) {
	p := NewPool[int64]()
	if _, err := p.Get(math.MaxInt); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Get(MaxInt) error = %v, want ErrAllocation", err)
	}
}
