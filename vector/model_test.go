package vector

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vector/internal/testutil"
)

// apply runs op against v the same way testutil.Model.Apply runs it
// against a slice.
func apply(v *Vector[int], op testutil.Op) error {
	switch op.Kind {
	case testutil.OpPushBack:
		return v.PushBack(op.Value)
	case testutil.OpPopBack:
		v.PopBack()
	case testutil.OpInsert:
		pos := v.Begin().Add(testutil.IndexIn(op.Pos, v.Len()+1))
		_, err := v.Insert(pos, op.Value)
		return err
	case testutil.OpErase:
		if v.IsEmpty() {
			return nil
		}
		_, err := v.Erase(v.Begin().Add(testutil.IndexIn(op.Pos, v.Len())))
		return err
	case testutil.OpResize:
		return v.Resize(op.N)
	case testutil.OpReserve:
		return v.Reserve(op.N)
	case testutil.OpClear:
		v.Clear()
	}
	return nil
}

func TestMatchesReferenceModel(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			var (
				v       Vector[int]
				model   testutil.Model
				lastCap int
			)
			for step, op := range testutil.Script(seed, 500) {
				capBefore := v.Cap()
				if err := apply(&v, op); err != nil {
					t.Fatalf("step %d %v: %v", step, op.Kind, err)
				}
				model.Apply(op)

				if v.Len() != len(model.Data) {
					t.Fatalf("step %d %v: Len() = %d, want %d", step, op.Kind, v.Len(), len(model.Data))
				}
				requireContents(t, &v, model.Data)
				if v.Cap() < lastCap {
					t.Fatalf("step %d %v: capacity shrank from %d to %d", step, op.Kind, lastCap, v.Cap())
				}
				if (op.Kind == testutil.OpPushBack || op.Kind == testutil.OpInsert) &&
					v.Cap() != capBefore && v.Cap() != nextCapacity(capBefore) {
					t.Fatalf("step %d %v: grew from %d to %d, want %d", step, op.Kind, capBefore, v.Cap(), nextCapacity(capBefore))
				}
				lastCap = v.Cap()
			}
		})
	}
}

func TestDeterministicAppendOrder(t *testing.T) {
	values := testutil.DeterministicInts(3, 257, 1<<20)
	v := New[int]()
	for _, x := range values {
		_ = v.PushBack(x)
	}
	requireContents(t, v, values)

	clone := v.Clone()
	for i := len(values) - 1; i >= 0; i-- {
		if _, err := clone.Erase(clone.Begin().Add(i)); err != nil {
			t.Fatal(err)
		}
	}
	if !clone.IsEmpty() || Equal(clone, v) {
		t.Fatal("erasing the clone affected the original or left elements behind")
	}
	requireContents(t, v, values)
}

func TestOfCopiesInput(t *testing.T) {
	values := testutil.Ramp(5)
	v := Of(values...)
	values[0] = 99
	requireContents(t, v, []int{0, 1, 2, 3, 4})
}
