package stats

import (
	"math"
	"testing"
	"time"

	"github.com/scottprahl/gospeckle/go/rng"
	"gonum.org/v1/gonum/mat"
)

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func timeFunc(f func()) time.Duration {
	t := time.Now()
	f()
	return time.Since(t)
}

func randVec(src *rng.Source, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = src.Float64()
	}
	return x
}

func randImage(src *rng.Source, m, n int) *mat.Dense {
	return mat.NewDense(m, n, randVec(src, m*n))
}

func testMatEq(t *testing.T, want, got mat.Matrix, eps float64) {
	t.Helper()
	m, n := want.Dims()
	p, q := got.Dims()
	if m != p || n != q {
		t.Fatalf("dims differ: want %dx%d, got %dx%d", m, n, p, q)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if a, b := want.At(i, j), got.At(i, j); !epsEq(a, b, eps) {
				t.Errorf("at (%d, %d): want %.6g, got %.6g", i, j, a, b)
			}
		}
	}
}
