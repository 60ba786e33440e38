package autocov

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

// Image of width w and height h with elements in [0, 1).
func randImage(src *rng.Source, w, h int) *mat.Dense {
	data := make([]float64, w*h)
	for i := range data {
		data[i] = src.Float64()
	}
	return mat.NewDense(h, w, data)
}

func covarFFT(im *mat.Dense, b int) *Covar {
	w, h := size(im)
	return normCovar(covarStatsFFT(im, b), covarCounts(w, h, b))
}

func covarEq(t *testing.T, want, got *Covar, eps float64) bool {
	t.Helper()
	if want.Band != got.Band {
		t.Errorf("bandwidths differ: want %d, got %d", want.Band, got.Band)
		return false
	}
	ok := true
	for dx := -want.Band; dx <= want.Band; dx++ {
		for dy := -want.Band; dy <= want.Band; dy++ {
			a, b := want.At(dx, dy), got.At(dx, dy)
			if math.IsNaN(a) && math.IsNaN(b) {
				continue
			}
			if !epsEq(a, b, eps) {
				t.Errorf("not equal: at (%d, %d): want %g, got %g", dx, dy, a, b)
				ok = false
			}
		}
	}
	return ok
}

func countEq(t *testing.T, want, got *Count) bool {
	t.Helper()
	if want.Band != got.Band {
		t.Errorf("bandwidths differ: want %d, got %d", want.Band, got.Band)
		return false
	}
	ok := true
	for dx := -want.Band; dx <= want.Band; dx++ {
		for dy := -want.Band; dy <= want.Band; dy++ {
			if a, b := want.At(dx, dy), got.At(dx, dy); a != b {
				t.Errorf("not equal: at (%d, %d): want %d, got %d", dx, dy, a, b)
				ok = false
			}
		}
	}
	return ok
}
