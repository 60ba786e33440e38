package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaxNormalize divides m by its largest element in-place.
// A matrix whose maximum is zero is left unchanged.
func MaxNormalize(m *mat.Dense) {
	if hi := mat.Max(m); hi != 0 {
		// The largest element becomes exactly 1.
		m.Apply(func(_, _ int, v float64) float64 { return v / hi }, m)
	}
}

// MaxNormalizeVolume divides v by its largest element in-place.
// A volume whose maximum is zero is left unchanged.
func MaxNormalizeVolume(v *Volume) {
	if hi := v.Max(); hi != 0 {
		for i := range v.Elems {
			v.Elems[i] /= hi
		}
	}
}

// Blend returns wa*a + wb*b.
// Panics if the dimensions differ.
func Blend(wa float64, a *mat.Dense, wb float64, b *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	if p, q := b.Dims(); r != p || c != q {
		panic(fmt.Sprintf("dimensions differ: %dx%d, %dx%d", r, c, p, q))
	}
	dst := mat.NewDense(r, c, nil)
	dst.Scale(wa, a)
	var tmp mat.Dense
	tmp.Scale(wb, b)
	dst.Add(dst, &tmp)
	return dst
}

// BlendVolume returns wa*a + wb*b.
func BlendVolume(wa float64, a *Volume, wb float64, b *Volume) *Volume {
	dst := a.Clone()
	dst.Scale(wa)
	dst.AddScaled(wb, b)
	return dst
}

// Flatten returns the elements of m in row-major order.
func Flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	x := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x = append(x, m.At(i, j))
		}
	}
	return x
}
