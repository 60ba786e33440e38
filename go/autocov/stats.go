package autocov

import (
	"image"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

// Stats accumulates stationary statistics over a single image
// for displacements up to band, which must be non-negative.
func Stats(im *mat.Dense, band int) *Total {
	w, h := size(im)
	return &Total{
		MeanTotal:  mat.Sum(im),
		CovarTotal: covarStatsFFT(im, band),
		Count:      covarCounts(w, h, band),
		Images:     1,
	}
}

// Width (columns) and height (rows).
func size(im mat.Matrix) (w, h int) {
	h, w = im.Dims()
	return w, h
}

// b is the bandwidth.
func covarStatsNaive(im *mat.Dense, b int) *Covar {
	w, h := size(im)
	cov := NewCovar(b)
	bnds := image.Rect(0, 0, w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			near := image.Rect(x-b, y-b, x+b+1, y+b+1)
			r := bnds.Intersect(near)
			for i := r.Min.X; i < r.Max.X; i++ {
				dx := i - x
				for j := r.Min.Y; j < r.Max.Y; j++ {
					dy := j - y
					ff := im.At(y, x) * im.At(j, i)
					cov.Set(dx, dy, cov.At(dx, dy)+ff)
				}
			}
		}
	}
	return cov
}

// b is the bandwidth.
func covarCountsNaive(w, h, b int) *Count {
	cnt := NewCount(b)
	bnds := image.Rect(0, 0, w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			near := image.Rect(x-b, y-b, x+b+1, y+b+1)
			r := bnds.Intersect(near)
			for i := r.Min.X; i < r.Max.X; i++ {
				for j := r.Min.Y; j < r.Max.Y; j++ {
					cnt.Set(i-x, j-y, cnt.At(i-x, j-y)+1)
				}
			}
		}
	}
	return cnt
}

// Computes the number of pixel pairs at each displacement.
func covarCounts(w, h, b int) *Count {
	cnt := NewCount(b)
	// Cap at max observed displacement.
	bx := min(b, w-1)
	by := min(b, h-1)
	for dx := 0; dx <= bx; dx++ {
		for dy := 0; dy <= by; dy++ {
			n := int64(w-dx) * int64(h-dy)
			// Number depends on absolute dx, dy.
			cnt.Set(dx, dy, n)
			cnt.Set(dx, -dy, n)
			cnt.Set(-dx, dy, n)
			cnt.Set(-dx, -dy, n)
		}
	}
	return cnt
}

// b is the bandwidth.
func covarStatsFFT(im *mat.Dense, b int) *Covar {
	w, h := size(im)
	// Cap x- and y-bandwidth at the max displacement.
	bx := min(b, w-1)
	by := min(b, h-1)
	// Padded so that displacements of opposite sign do not overlap.
	m, n := fftSize(h+by), fftSize(w+bx)
	f := fft.FFT2Real(padImage(im, m, n))
	crossCorr(f, f, f)
	g := fft.IFFT2(f)

	cov := NewCovar(b)
	for dx := -bx; dx <= bx; dx++ {
		for dy := -by; dy <= by; dy++ {
			// Wrap around boundary.
			cov.Set(dx, dy, real(g[(dy+m)%m][(dx+n)%n]))
		}
	}
	return cov
}
