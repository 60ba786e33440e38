package autocov

import (
	"math"
	"testing"

	"github.com/scottprahl/gospeckle/go/rng"
	"github.com/scottprahl/gospeckle/go/speckle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeckleSize_line(t *testing.T) {
	cov := NewCovar(3)
	for d := -3; d <= 3; d++ {
		// Falls linearly to zero at |d| = 2 along x.
		cov.Set(d, 0, math.Max(0, 1-math.Abs(float64(d))/2))
	}
	cov.Set(0, 1, 0.8)
	cov.Set(0, 2, 0.6)
	cov.Set(0, 3, 0.4)
	x, y := SpeckleSize(cov)
	assert.InDelta(t, 1, x, 1e-12)
	assert.InDelta(t, 2.5, y, 1e-12)
}

func TestSpeckleSize_notReached(t *testing.T) {
	cov := NewCovar(2)
	cov.apply(func(float64) float64 { return 1 })
	x, y := SpeckleSize(cov)
	assert.True(t, math.IsNaN(x))
	assert.True(t, math.IsNaN(y))

	x, _ = SpeckleSize(NewCovar(2))
	assert.True(t, math.IsNaN(x))
}

// Speckle grows with the number of pixels per speckle.
func TestSpeckleSize_pixPerSpeckle(t *testing.T) {
	const band = 16
	size, n := 64, 4
	if testing.Short() {
		t.Log("reduce number of realizations in short mode")
		n = 2
	}
	measure := func(pix float64) (float64, float64) {
		ims, err := speckle.Realizations(rng.New(8), speckle.DefaultParams(size, pix), n)
		require.NoError(t, err)
		var total *Total
		for _, im := range ims {
			total = AddTotalToEither(total, Stats(im, band))
		}
		return SpeckleSize(Normalize(total, true).Covar)
	}
	x2, y2 := measure(2)
	x6, y6 := measure(6)
	t.Logf("pix 2: (%.3g, %.3g); pix 6: (%.3g, %.3g)", x2, y2, x6, y6)
	for _, s := range []float64{x2, y2, x6, y6} {
		require.False(t, math.IsNaN(s))
	}
	assert.Greater(t, x6, 1.5*x2)
	assert.Greater(t, y6, 1.5*y2)
}
