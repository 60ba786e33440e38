package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Volume is a cubic array of real values.
type Volume struct {
	Size int
	// Elems[(x*Size+y)*Size+z]
	Elems []float64
}

// NewVolume allocates a zero volume with the given edge length.
func NewVolume(size int) *Volume {
	return &Volume{size, make([]float64, size*size*size)}
}

func (v *Volume) index(x, y, z int) int {
	return (x*v.Size+y)*v.Size + z
}

// At accesses the element at (x, y, z).
func (v *Volume) At(x, y, z int) float64 {
	return v.Elems[v.index(x, y, z)]
}

// Set modifies the element at (x, y, z).
func (v *Volume) Set(x, y, z int, val float64) {
	v.Elems[v.index(x, y, z)] = val
}

// Clone creates a copy.
func (v *Volume) Clone() *Volume {
	dst := NewVolume(v.Size)
	copy(dst.Elems, v.Elems)
	return dst
}

// Max returns the largest element.
func (v *Volume) Max() float64 {
	return floats.Max(v.Elems)
}

// Scale multiplies every element by k in-place.
func (v *Volume) Scale(k float64) {
	floats.Scale(k, v.Elems)
}

// AddScaled adds alpha*u to v in-place.
// Panics if the sizes differ.
func (v *Volume) AddScaled(alpha float64, u *Volume) {
	if v.Size != u.Size {
		panic(fmt.Sprintf("volume sizes differ: %d, %d", v.Size, u.Size))
	}
	floats.AddScaled(v.Elems, alpha, u.Elems)
}

// Slice extracts the x-y plane at z as an image (rows y, columns x).
func (v *Volume) Slice(z int) *mat.Dense {
	dst := mat.NewDense(v.Size, v.Size, nil)
	for y := 0; y < v.Size; y++ {
		for x := 0; x < v.Size; x++ {
			dst.Set(y, x, v.At(x, y, z))
		}
	}
	return dst
}
