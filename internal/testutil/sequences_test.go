package testutil

import (
	"slices"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(4)
	if !slices.Equal(r, []int{0, 1, 2, 3}) {
		t.Fatalf("Ramp(4) = %v", r)
	}
}

func TestDeterministicIntsReproducible(t *testing.T) {
	a := DeterministicInts(42, 64, 10)
	b := DeterministicInts(42, 64, 10)
	if !slices.Equal(a, b) {
		t.Fatal("DeterministicInts not deterministic")
	}
	for i, v := range a {
		if v < 0 || v >= 10 {
			t.Fatalf("a[%d] = %d out of range", i, v)
		}
	}
}

func TestScriptReproducible(t *testing.T) {
	a := Script(7, 100)
	b := Script(7, 100)
	if !slices.Equal(a, b) {
		t.Fatal("Script not deterministic")
	}
}

func TestIndexIn(t *testing.T) {
	tests := []struct {
		pos  float64
		n    int
		want int
	}{
		{pos: 0, n: 5, want: 0},
		{pos: 0.99, n: 5, want: 4},
		{pos: 1, n: 5, want: 4},
		{pos: 0.5, n: 0, want: 0},
	}
	for _, tt := range tests {
		if got := IndexIn(tt.pos, tt.n); got != tt.want {
			t.Fatalf("IndexIn(%v, %d) = %d, want %d", tt.pos, tt.n, got, tt.want)
		}
	}
}

func TestModelApply(t *testing.T) {
	var m Model
	m.Apply(Op{Kind: OpPushBack, Value: 1})
	m.Apply(Op{Kind: OpPushBack, Value: 3})
	m.Apply(Op{Kind: OpInsert, Pos: 0.5, Value: 2})
	if !slices.Equal(m.Data, []int{1, 2, 3}) {
		t.Fatalf("after inserts: %v", m.Data)
	}
	m.Apply(Op{Kind: OpErase, Pos: 0})
	m.Apply(Op{Kind: OpResize, N: 4})
	if !slices.Equal(m.Data, []int{2, 3, 0, 0}) {
		t.Fatalf("after erase/resize: %v", m.Data)
	}
	m.Apply(Op{Kind: OpClear})
	m.Apply(Op{Kind: OpPopBack})
	if len(m.Data) != 0 {
		t.Fatalf("after clear/pop: %v", m.Data)
	}
}
