package testutil

import (
	"math/rand"
	"slices"
)

// Ramp returns [0, 1, ..., n-1].
func Ramp(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// DeterministicInts returns n values in [0, limit) from a fixed seed.
func DeterministicInts(seed int64, n, limit int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(limit)
	}
	return out
}

// OpKind names a mutating sequence operation.
type OpKind int

const (
	OpPushBack OpKind = iota
	OpPopBack
	OpInsert
	OpErase
	OpResize
	OpReserve
	OpClear
	opCount
)

func (k OpKind) String() string {
	switch k {
	case OpPushBack:
		return "PushBack"
	case OpPopBack:
		return "PopBack"
	case OpInsert:
		return "Insert"
	case OpErase:
		return "Erase"
	case OpResize:
		return "Resize"
	case OpReserve:
		return "Reserve"
	case OpClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Op is one step of a generated script. Pos is a fraction of the current
// length in [0, 1) that the runner maps onto a valid index.
type Op struct {
	Kind  OpKind
	Pos   float64
	Value int
	N     int
}

// Script returns n operations from a fixed seed. Clear is rare so that
// sequences get long enough to reallocate several times.
func Script(seed int64, n int) []Op {
	rng := rand.New(rand.NewSource(seed))
	ops := make([]Op, n)
	for i := range ops {
		kind := OpKind(rng.Intn(int(opCount)))
		if kind == OpClear && rng.Intn(8) != 0 {
			kind = OpPushBack
		}
		ops[i] = Op{
			Kind:  kind,
			Pos:   rng.Float64(),
			Value: rng.Intn(1000),
			N:     rng.Intn(24),
		}
	}
	return ops
}

// IndexIn maps a fractional position onto [0, n). It returns 0 for n <= 0.
func IndexIn(pos float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(pos * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Model is a plain-slice reference implementation of the sequence
// operations, used to check a container against known-good behaviour.
type Model struct {
	Data []int
}

// Apply performs op on the model.
func (m *Model) Apply(op Op) {
	switch op.Kind {
	case OpPushBack:
		m.Data = append(m.Data, op.Value)
	case OpPopBack:
		if len(m.Data) > 0 {
			m.Data = m.Data[:len(m.Data)-1]
		}
	case OpInsert:
		i := IndexIn(op.Pos, len(m.Data)+1)
		m.Data = slices.Insert(m.Data, i, op.Value)
	case OpErase:
		if len(m.Data) > 0 {
			i := IndexIn(op.Pos, len(m.Data))
			m.Data = slices.Delete(m.Data, i, i+1)
		}
	case OpResize:
		if op.N <= len(m.Data) {
			m.Data = m.Data[:op.N]
		} else {
			m.Data = append(m.Data, make([]int, op.N-len(m.Data))...)
		}
	case OpClear:
		m.Data = m.Data[:0]
	}
}
