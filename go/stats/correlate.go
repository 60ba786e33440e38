package stats

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

// Kernels with at most this many elements are correlated directly.
const directKernelSize = 64

// Correlates an image with a kernel, keeping an output the size of the image.
// Pixels outside the image are zero.
// The kernel is anchored at (kr/2, kc/2):
//	dst(i, j) = sum_(a, b) x(i+a-kr/2, j+b-kc/2) k(a, b)
func correlateSame(x, k mat.Matrix) *mat.Dense {
	kr, kc := k.Dims()
	if kr*kc <= directKernelSize {
		return correlateSameNaive(x, k)
	}
	return correlateSameFFT(x, k)
}

func correlateSameNaive(x, k mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	kr, kc := k.Dims()
	ar, ac := kr/2, kc/2
	dst := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var total float64
			for a := 0; a < kr; a++ {
				u := i + a - ar
				if u < 0 || u >= r {
					continue
				}
				for b := 0; b < kc; b++ {
					v := j + b - ac
					if v < 0 || v >= c {
						continue
					}
					total += x.At(u, v) * k.At(a, b)
				}
			}
			dst.Set(i, j, total)
		}
	}
	return dst
}

func correlateSameFFT(x, k mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	kr, kc := k.Dims()
	// Large enough that the circular correlation does not wrap.
	m, n := r+kr-1, c+kc-1
	xHat := fft.FFT2Real(padRows(x, m, n))
	kHat := fft.FFT2Real(padRows(k, m, n))
	crossCorr(xHat, xHat, kHat)
	g := fft.IFFT2(xHat)

	ar, ac := kr/2, kc/2
	dst := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, real(g[(i-ar+m)%m][(j-ac+n)%n]))
		}
	}
	return dst
}

// z(u, v) <- x(u, v) * conj(y(u, v)) for all u, v.
func crossCorr(z, x, y [][]complex128) {
	for u := range z {
		for v := range z[u] {
			z[u][v] = x[u][v] * cmplx.Conj(y[u][v])
		}
	}
}

// Copies a matrix into the top-left corner of an m x n array of zeros.
func padRows(x mat.Matrix, m, n int) [][]float64 {
	r, c := x.Dims()
	dst := make([][]float64, m)
	for i := range dst {
		dst[i] = make([]float64, n)
		if i < r {
			for j := 0; j < c; j++ {
				dst[i][j] = x.At(i, j)
			}
		}
	}
	return dst
}
