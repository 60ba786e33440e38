package seq

import (
	"math"
	"testing"

	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

type generator func(src *rng.Source, m int, mean, stdev, cl float64) ([]float64, error)

var generators = []struct {
	Name string
	Gen  generator
	// Autocorrelation at lag k for correlation length cl.
	Corr func(k, cl float64) float64
}{
	{"exponential", Exponential, func(k, cl float64) float64 { return math.Exp(-k / cl) }},
	{"gaussian", Gaussian, func(k, cl float64) float64 { return math.Exp(-k * k / (cl * cl)) }},
}

// Sample correlation coefficient at lag k.
func lagCorr(x []float64, k int) float64 {
	return stat.Correlation(x[:len(x)-k], x[k:], nil)
}

func TestLength(t *testing.T) {
	for _, g := range generators {
		for _, m := range []int{11, 100, 1001} {
			x, err := g.Gen(rng.New(1), m, 10, 2, 5)
			require.NoError(t, err, g.Name)
			assert.Len(t, x, m, g.Name)
		}
	}
}

func TestMoments(t *testing.T) {
	cases := []struct {
		M   int
		Tol float64
	}{
		{1000, 0.8},
		{20000, 0.25},
	}
	for _, g := range generators {
		for _, c := range cases {
			x, err := g.Gen(rng.New(2), c.M, 10, 2, 5)
			require.NoError(t, err)
			mean, std := stat.PopMeanStdDev(x, nil)
			assert.InDelta(t, 10, mean, c.Tol, "%s: m %d: mean", g.Name, c.M)
			assert.InDelta(t, 2, std, c.Tol, "%s: m %d: stdev", g.Name, c.M)
		}
	}
}

func TestAutocorrelationShape(t *testing.T) {
	const cl = 8
	m := 100000
	if testing.Short() {
		t.Log("reduce size in short mode")
		m = 40000
	}
	for _, g := range generators {
		x, err := g.Gen(rng.New(3), m, 0, 1, cl)
		require.NoError(t, err)
		for _, k := range []int{1, 4, 8, 12} {
			want := g.Corr(float64(k), cl)
			got := lagCorr(x, k)
			assert.InDelta(t, want, got, 0.08, "%s: lag %d", g.Name, k)
		}
	}
}

func TestZeroStdev(t *testing.T) {
	for _, g := range generators {
		x, err := g.Gen(rng.New(4), 50, 3, 0, 5)
		require.NoError(t, err)
		for _, xi := range x {
			assert.InDelta(t, 3, xi, 1e-12, g.Name)
		}
	}
}

func TestInvalid(t *testing.T) {
	cases := []struct {
		M               int
		Mean, Stdev, CL float64
	}{
		{0, 10, 2, 5},
		{-4, 10, 2, 5},
		{100, 10, -2, 5},
		{100, 10, 2, -5},
		{100, 10, 2, 0},
		{100, 10, 2, 51},
		// Exactly two correlation lengths is rejected.
		{100, 10, 2, 50},
		{100, 10, math.NaN(), 5},
	}
	for _, g := range generators {
		for _, c := range cases {
			_, err := g.Gen(rng.New(1), c.M, c.Mean, c.Stdev, c.CL)
			assert.ErrorIs(t, err, argerr.ErrInvalidArgument, "%s: %+v", g.Name, c)
		}
	}
}

func TestSeedReproducible(t *testing.T) {
	for _, g := range generators {
		a, err := g.Gen(rng.New(9), 64, 0, 1, 4)
		require.NoError(t, err)
		b, err := g.Gen(rng.New(9), 64, 0, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, a, b, g.Name)
	}
}

func TestConvolveCirc_vsNaive(t *testing.T) {
	const eps = 1e-9
	src := rng.New(5)
	for _, n := range []int{1, 7, 16, 30} {
		x := src.Normals(n, 1)
		y := src.Normals(n, 1)
		got := convolveCirc(x, y)
		for i := 0; i < n; i++ {
			var want float64
			for j := 0; j < n; j++ {
				want += x[j] * y[(i-j+n)%n]
			}
			if math.Abs(want-got[i]) > eps {
				t.Errorf("n %d: at %d: want %.6g, got %.6g", n, i, want, got[i])
			}
		}
	}
}

func TestGaussKernel_grid(t *testing.T) {
	for _, m := range []int{7, 8, 101} {
		const cl = 3.0
		k := gaussKernel(m, cl)
		require.Len(t, k, m)
		// Ends at -m/2 and m/2.
		end := math.Exp(-2 * math.Pow(float64(m)/2/cl, 2))
		assert.InDelta(t, end, k[0], 1e-15, "m %d", m)
		assert.InDelta(t, end, k[m-1], 1e-15, "m %d", m)
		for i := 0; i < m; i++ {
			assert.InDelta(t, k[i], k[m-1-i], 1e-12, "m %d: symmetry at %d", m, i)
		}
	}
	assert.Equal(t, []float64{math.Exp(-2 * 0.25)}, gaussKernel(1, 1))
}
