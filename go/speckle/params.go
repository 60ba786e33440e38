package speckle

import (
	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/mask"
)

// Params describes the field to synthesize.
type Params struct {
	// Edge length M of the output.
	Size int
	// Average number of pixels across a speckle.
	PixPerSpeckle float64
	// Aspect ratios of the aperture: y radius over x radius, z radius over x radius.
	// Beta is only used in 3-D.
	Alpha, Beta float64
	Shape       mask.Shape
	// 1 is fully polarized, 0 is unpolarized.
	Polarization float64
}

// DefaultParams gives a circular (spherical) aperture and full polarization.
func DefaultParams(size int, pixPerSpeckle float64) Params {
	return Params{
		Size:          size,
		PixPerSpeckle: pixPerSpeckle,
		Alpha:         1,
		Beta:          1,
		Shape:         mask.Ellipse,
		Polarization:  1,
	}
}

// Radii2 gives the aperture radii (x, y), truncated toward zero.
func (p Params) Radii2() (xr, yr int) {
	return p.Size / 2, int(p.Alpha * float64(p.Size) / 2)
}

// Radii3 gives the aperture radii (x, y, z), truncated toward zero.
func (p Params) Radii3() (xr, yr, zr int) {
	xr, yr = p.Radii2()
	return xr, yr, int(p.Beta * float64(p.Size) / 2)
}

// Oversample gives the edge length L of the grid on which the aperture lies.
func (p Params) Oversample(rmax int) int {
	return int(p.PixPerSpeckle * 2 * float64(rmax))
}

func (p Params) validate(dims int) error {
	err := argerr.First(
		argerr.PositiveInt("size", p.Size),
		argerr.Positive("pix per speckle", p.PixPerSpeckle),
		argerr.Positive("alpha", p.Alpha),
	)
	if err != nil {
		return err
	}
	if dims == 3 {
		if err := argerr.Positive("beta", p.Beta); err != nil {
			return err
		}
	}
	if !(p.Polarization >= 0 && p.Polarization <= 1) {
		return argerr.New("polarization must be in [0, 1]: %g", p.Polarization)
	}

	radii := make([]int, 0, 3)
	xr, yr, zr := p.Radii3()
	radii = append(radii, xr, yr)
	if dims == 3 {
		radii = append(radii, zr)
	}
	var rmax int
	for i, r := range radii {
		if r < 1 {
			return argerr.New("aperture radius %d is zero (size %d, alpha %g, beta %g)", i, p.Size, p.Alpha, p.Beta)
		}
		rmax = max(rmax, r)
	}
	if l := p.Oversample(rmax); l < p.Size {
		return argerr.New("oversampled grid %d smaller than output %d (pix per speckle %g)", l, p.Size, p.PixPerSpeckle)
	}
	return nil
}
