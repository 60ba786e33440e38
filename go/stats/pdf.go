package stats

import (
	"math"

	"github.com/scottprahl/gospeckle/go/argerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PDF estimates the probability density of the values in x
// from a histogram with the given number of equal-width bins spanning
// the range of x.
// Returns the bin centres and the density in each bin,
// which integrates to one.
func PDF(x []float64, bins int) (centers, density []float64, err error) {
	if len(x) == 0 {
		return nil, nil, argerr.New("no samples")
	}
	if err := argerr.PositiveInt("bins", bins); err != nil {
		return nil, nil, err
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	floats.Argsort(sorted, make([]int, len(x)))

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// The last bin is closed.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	count := stat.Histogram(nil, dividers, sorted, nil)
	width := (hi - lo) / float64(bins)
	centers = make([]float64, bins)
	density = make([]float64, bins)
	for i := range count {
		centers[i] = lo + (float64(i)+0.5)*width
		density[i] = count[i] / (float64(len(x)) * width)
	}
	return centers, density, nil
}
