package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Scale multiplies every element of v by s in place.
func Scale(v *Vector[float64], s float64) {
	data := v.Slice()
	if len(data) == 0 {
		return
	}
	vecmath.ScaleBlock(data, data, s)
}

// AddInPlace adds src to dst element-wise: dst[i] += src[i].
func AddInPlace(dst, src *Vector[float64]) error {
	if err := sameLen(dst, src); err != nil {
		return fmt.Errorf("vector: add: %w", err)
	}
	vecmath.AddBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// MulInPlace multiplies dst by src element-wise: dst[i] *= src[i].
func MulInPlace(dst, src *Vector[float64]) error {
	if err := sameLen(dst, src); err != nil {
		return fmt.Errorf("vector: mul: %w", err)
	}
	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// Product returns a new vector holding a[i] * b[i].
func Product(a, b *Vector[float64]) (*Vector[float64], error) {
	if err := sameLen(a, b); err != nil {
		return nil, fmt.Errorf("vector: product: %w", err)
	}
	out := NewSized[float64](a.Len())
	vecmath.MulBlock(out.Slice(), a.Slice(), b.Slice())
	return out, nil
}

func sameLen(a, b *Vector[float64]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d != %d", ErrSizeMismatch, a.Len(), b.Len())
	}
	return nil
}
