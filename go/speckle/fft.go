package speckle

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
	"github.com/scottprahl/gospeckle/go/field"
	"github.com/scottprahl/gospeckle/go/mask"
	"github.com/scottprahl/gospeckle/go/rng"
	"gonum.org/v1/gonum/mat"
)

// Lays unit phasors of uniform random phase over the aperture.
// The result is indexed [y][x].
// A phase is drawn for every grid point,
// so the number of draws does not depend on the shape.
func randomPhase2(src *rng.Source, m *mask.Mask2) [][]complex128 {
	l := m.Size
	x := make([][]complex128, l)
	for y := range x {
		x[y] = make([]complex128, l)
		for i := range x[y] {
			phi := src.Phase()
			if m.At(i, y) {
				x[y][i] = cmplx.Rect(1, phi)
			}
		}
	}
	return x
}

// Same as randomPhase2 for a cube, laid out for an N-D transform
// with index (x, y, z).
func randomPhase3(src *rng.Source, m *mask.Mask3) *dsputils.Matrix {
	l := m.Size
	x := make([]complex128, l*l*l)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			for k := 0; k < l; k++ {
				phi := src.Phase()
				if m.At(i, j, k) {
					x[(i*l+j)*l+k] = cmplx.Rect(1, phi)
				}
			}
		}
	}
	return dsputils.MakeMatrix(x, []int{l, l, l})
}

// Computes the squared magnitude of the 2D transform
// with zero frequency moved to the centre,
// and keeps the top-left size x size block.
func intensity2(x [][]complex128, size int) *mat.Dense {
	f := fft.FFT2(x)
	l := len(f)
	dst := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		row := f[shift(i, l)]
		for j := 0; j < size; j++ {
			dst.Set(i, j, sqrAbs(row[shift(j, l)]))
		}
	}
	return dst
}

// Same as intensity2 for a cube.
func intensity3(x *dsputils.Matrix, size int) *field.Volume {
	l := x.Dimensions()[0]
	f := fft.FFTN(x)
	dst := field.NewVolume(size)
	idx := make([]int, 3)
	for i := 0; i < size; i++ {
		idx[0] = shift(i, l)
		for j := 0; j < size; j++ {
			idx[1] = shift(j, l)
			for k := 0; k < size; k++ {
				idx[2] = shift(k, l)
				dst.Set(i, j, k, sqrAbs(f.Value(idx)))
			}
		}
	}
	return dst
}

// Index into an array of length n which appears at j
// once zero frequency is moved to n/2.
func shift(j, n int) int {
	return (j - n/2 + n) % n
}

func sqrAbs(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
