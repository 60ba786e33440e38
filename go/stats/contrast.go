package stats

import (
	"math"

	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/field"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Contrast returns the global speckle contrast,
// the population standard deviation over the mean.
func Contrast(x []float64) float64 {
	mean, std := stat.PopMeanStdDev(x, nil)
	return std / mean
}

// LocalContrast computes the contrast of x within a window weighted by kernel,
// centred on every pixel, together with the global contrast of x.
//
// With Nk the sum of the kernel:
//	mu  = corr(x, kernel) / Nk
//	var = corr((x-mu)^2, kernel) / Nk^2
//	C   = sqrt(var) / mu
// where corr keeps an output the size of x and treats pixels outside x as zero.
// Where mu is zero, C is not finite.
func LocalContrast(x, kernel *mat.Dense) (*mat.Dense, float64, error) {
	if x == nil || kernel == nil || x.IsEmpty() || kernel.IsEmpty() {
		return nil, 0, argerr.New("empty image or kernel")
	}
	nk := mat.Sum(kernel)
	if nk == 0 {
		return nil, 0, argerr.New("kernel sums to zero")
	}
	r, c := x.Dims()

	mu := correlateSame(x, kernel)
	mu.Scale(1/nk, mu)

	dev := mat.NewDense(r, c, nil)
	dev.Sub(x, mu)
	dev.MulElem(dev, dev)
	variance := correlateSame(dev, kernel)
	variance.Scale(1/(nk*nk), variance)

	nonneg := mat.Min(kernel) >= 0
	C := mat.NewDense(r, c, nil)
	C.Apply(func(i, j int, v float64) float64 {
		if v < 0 && nonneg {
			// Rounding in the transform.
			v = 0
		}
		return math.Sqrt(v) / mu.At(i, j)
	}, variance)
	return C, Contrast(field.Flatten(x)), nil
}
