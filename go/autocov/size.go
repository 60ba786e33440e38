package autocov

import "math"

// SpeckleSize returns the half-width at half-maximum of the normalized
// autocovariance along x and along y, interpolating linearly between
// displacements.
// The autocovariance should be centred.
// A half-width which is not reached within the band is NaN.
func SpeckleSize(cov *Covar) (x, y float64) {
	c := cov.Correlation()
	x = halfWidth(c.Band, func(d int) float64 { return c.At(d, 0) })
	y = halfWidth(c.Band, func(d int) float64 { return c.At(0, d) })
	return x, y
}

func halfWidth(band int, f func(int) float64) float64 {
	if !(f(0) > 0.5) {
		return math.NaN()
	}
	for d := 1; d <= band; d++ {
		a, b := f(d-1), f(d)
		if b <= 0.5 {
			return float64(d-1) + (a-0.5)/(a-b)
		}
	}
	return math.NaN()
}
