package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestPDF_integral(t *testing.T) {
	x := randVec(rng.New(10), 1000)
	centers, density, err := PDF(x, 20)
	require.NoError(t, err)
	require.Len(t, centers, 20)
	require.Len(t, density, 20)
	width := centers[1] - centers[0]
	assert.InDelta(t, 1, width*floats.Sum(density), 1e-9)
	assert.True(t, floats.Min(centers) > floats.Min(x))
	assert.True(t, floats.Max(centers) < floats.Max(x))
}

func TestPDF_exponential(t *testing.T) {
	// Intensity of fully developed speckle.
	src := rng.New(11)
	x := make([]float64, 50000)
	for i := range x {
		x[i] = -math.Log(1 - src.Float64())
	}
	centers, density, err := PDF(x, 50)
	require.NoError(t, err)
	// Bins near zero hold most samples.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, math.Exp(-centers[i]), density[i], 0.1, "bin %d", i)
	}
}

func TestPDF_constant(t *testing.T) {
	centers, density, err := PDF([]float64{3, 3, 3}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1, (centers[1]-centers[0])*floats.Sum(density), 1e-12)
}

func TestPDF_invalid(t *testing.T) {
	_, _, err := PDF(nil, 10)
	assert.True(t, errors.Is(err, argerr.ErrInvalidArgument))
	_, _, err = PDF([]float64{1, 2}, 0)
	assert.True(t, errors.Is(err, argerr.ErrInvalidArgument))
}
