// Package seq generates 1-D random sequences with a prescribed mean,
// standard deviation and autocorrelation.
//
// Exponential gives r(k) = exp(-k/cl) and Gaussian gives r(k) = exp(-(k/cl)^2),
// where cl is the correlation length in samples.
// Both require the sequence to span more than two correlation lengths.
package seq

import (
	"math"

	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/rng"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Exponential generates m samples of a first-order autoregressive process
//	r[0] = g[0]
//	r[i] = f*r[i-1] + sqrt(1-f^2)*g[i],  f = exp(-1/cl)
// with g standard normal, and returns mean + stdev*r.
func Exponential(src *rng.Source, m int, mean, stdev, cl float64) ([]float64, error) {
	if err := validate(m, stdev, cl); err != nil {
		return nil, err
	}
	g := rng.Or(src).Normals(m, 1)

	f := math.Exp(-1 / cl)
	fsqrt := math.Sqrt(1 - f*f)
	r := make([]float64, m)
	r[0] = g[0]
	for i := 1; i < m; i++ {
		r[i] = f*r[i-1] + fsqrt*g[i]
	}
	floats.Scale(stdev, r)
	floats.AddConst(mean, r)
	return r, nil
}

// Gaussian generates m samples by circular convolution of white noise
// of deviation stdev with the kernel exp(-2*(x/cl)^2) on a centred grid,
// rescaled by sqrt(2/(cl*sqrt(pi))) to restore the variance.
func Gaussian(src *rng.Source, m int, mean, stdev, cl float64) ([]float64, error) {
	if err := validate(m, stdev, cl); err != nil {
		return nil, err
	}
	x := rng.Or(src).Normals(m, stdev)
	y := convolveCirc(x, gaussKernel(m, cl))
	floats.Scale(math.Sqrt(2/(cl*math.Sqrt(math.Pi))), y)
	floats.AddConst(mean, y)
	return y, nil
}

func validate(m int, stdev, cl float64) error {
	if err := argerr.First(
		argerr.PositiveInt("length", m),
		argerr.Positive("correlation length", cl),
	); err != nil {
		return err
	}
	if !(stdev >= 0) {
		return argerr.New("standard deviation is negative: %g", stdev)
	}
	if !(float64(m)/cl > 2) {
		return argerr.New("length %d must exceed two correlation lengths (%g)", m, cl)
	}
	return nil
}

// Samples the kernel on m points spanning [-m/2, m/2], ends included.
func gaussKernel(m int, cl float64) []float64 {
	var step float64
	if m > 1 {
		step = float64(m) / float64(m-1)
	}
	k := make([]float64, m)
	for i := range k {
		x := (-float64(m)/2 + float64(i)*step) / cl
		k[i] = math.Exp(-2 * x * x)
	}
	return k
}

// Computes the circular convolution of two sequences of equal length
// in the Fourier domain.
func convolveCirc(x, y []float64) []float64 {
	n := len(x)
	fft := fourier.NewFFT(n)
	xHat := fft.Coefficients(nil, x)
	yHat := fft.Coefficients(nil, y)
	for i := range xHat {
		xHat[i] *= yHat[i]
	}
	z := fft.Sequence(nil, xHat)
	// Sequence is unnormalized.
	floats.Scale(1/float64(n), z)
	return z
}
