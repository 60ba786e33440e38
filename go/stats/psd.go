package stats

import (
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/spectral"
	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/field"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the one-sided periodogram |X(k)|^2 / n
// of the mean-subtracted signal for k = 0, ..., n/2.
// The terms 0 < k < n/2 appear once but count twice towards the energy.
func PowerSpectrum(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}
	coeff := fourier.NewFFT(n).Coefficients(nil, subMean(x))
	p := make([]float64, len(coeff))
	for k, c := range coeff {
		p[k] = sqrAbs(c) / float64(n)
	}
	return p
}

// PowerSpectrum2D returns |X(u, v)|^2 / (m n) of the mean-subtracted image,
// with the zero frequency moved to (m/2, n/2).
func PowerSpectrum2D(x *mat.Dense) *mat.Dense {
	m, n := x.Dims()
	mean := stat.Mean(field.Flatten(x), nil)
	rows := padRows(x, m, n)
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] -= mean
		}
	}
	coeff := fft.FFT2Real(rows)
	dst := mat.NewDense(m, n, nil)
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			dst.Set((u+m/2)%m, (v+n/2)%n, sqrAbs(coeff[u][v])/float64(m*n))
		}
	}
	return dst
}

// Welch estimates the power spectral density of a signal sampled at unit rate
// by averaging Hann-windowed periodograms over segments of the given length,
// overlapping by half a segment.
// The segment length must be even.
// Returns the density and the frequencies (cycles per sample) in [0, 1/2].
func Welch(x []float64, segment int) (psd, freq []float64, err error) {
	if segment <= 0 || segment%2 != 0 {
		return nil, nil, argerr.New("segment length must be positive and even: %d", segment)
	}
	if len(x) < segment {
		return nil, nil, argerr.New("signal shorter than segment: %d < %d", len(x), segment)
	}
	psd, freq = spectral.Pwelch(subMean(x), 1, &spectral.PwelchOptions{
		NFFT:     segment,
		Noverlap: segment / 2,
	})
	return psd, freq, nil
}

func sqrAbs(x complex128) float64 {
	a, b := real(x), imag(x)
	return a*a + b*b
}
