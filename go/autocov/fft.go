package autocov

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Smallest power of two not less than n.
func fftSize(n int) int {
	m := 1
	for m < n {
		m *= 2
	}
	return m
}

// Copies an image into the top-left corner of an m x n array.
// Any extra space is filled with zeros.
func padImage(im mat.Matrix, m, n int) [][]float64 {
	r, c := im.Dims()
	dst := make([][]float64, m)
	for i := range dst {
		dst[i] = make([]float64, n)
		if i < r {
			for j := 0; j < c; j++ {
				dst[i][j] = im.At(i, j)
			}
		}
	}
	return dst
}

// z(u, v) <- conj(x(u, v)) * y(u, v) for all u, v.
func crossCorr(z, x, y [][]complex128) {
	for u := range z {
		for v := range z[u] {
			z[u][v] = cmplx.Conj(x[u][v]) * y[u][v]
		}
	}
}
