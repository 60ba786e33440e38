package stats

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Autocorrelation returns the lags 0, ..., n-1 of the linear autocorrelation
// of x after subtracting its mean, divided by the largest value.
// If the signal has no energy, the zero vector is returned.
func Autocorrelation(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	r := autocorrFFT(subMean(x))
	if hi := floats.Max(r); hi != 0 {
		for k := range r {
			r[k] /= hi
		}
	}
	return r
}

func subMean(x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	floats.AddConst(-stat.Mean(x, nil), y)
	return y
}

// Lags 0, ..., n-1 of sum_i x[i] x[i+k].
func autocorrNaive(x []float64) []float64 {
	n := len(x)
	r := make([]float64, n)
	for k := 0; k < n; k++ {
		r[k] = floats.Dot(x[:n-k], x[k:])
	}
	return r
}

// Same as autocorrNaive, via a transform of length 2n
// so that the circular correlation does not wrap.
func autocorrFFT(x []float64) []float64 {
	n := len(x)
	m := 2 * n
	pad := make([]float64, m)
	copy(pad, x)
	fft := fourier.NewFFT(m)
	xHat := fft.Coefficients(nil, pad)
	for i, c := range xHat {
		xHat[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	g := fft.Sequence(nil, xHat)
	r := make([]float64, n)
	for k := range r {
		r[k] = g[k] / float64(m)
	}
	return r
}
