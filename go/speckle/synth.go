package speckle

import (
	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/field"
	"github.com/scottprahl/gospeckle/go/mask"
	"github.com/scottprahl/gospeckle/go/rng"
	"gonum.org/v1/gonum/mat"
)

// Exponential synthesizes a 2-D field with exponential intensity statistics,
// blended with a second independent field when p.Polarization < 1:
//	0.5*(1+p)*y1 + 0.5*(1-p)*y2
// A single field (p.Polarization == 1) has maximum exactly 1.
func Exponential(src *rng.Source, p Params) (*mat.Dense, error) {
	if err := p.validate(2); err != nil {
		return nil, err
	}
	src = rng.Or(src)
	if p.Polarization == 1 {
		return exponential2(src, p), nil
	}
	y := realizations2(src, p, 2)
	return blend(p.Polarization, y[0], y[1]), nil
}

// Rayleigh synthesizes an unpolarized 2-D field,
// the mean of two independent exponential fields.
// p.Polarization is ignored.
func Rayleigh(src *rng.Source, p Params) (*mat.Dense, error) {
	p.Polarization = 0
	return Exponential(src, p)
}

// Realizations draws n independent exponential fields from src,
// ignoring p.Polarization.
func Realizations(src *rng.Source, p Params, n int) ([]*mat.Dense, error) {
	p.Polarization = 1
	if err := p.validate(2); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, argerr.New("number of realizations is negative: %d", n)
	}
	return realizations2(rng.Or(src), p, n), nil
}

// Exponential3D is the 3-D counterpart of Exponential.
func Exponential3D(src *rng.Source, p Params) (*field.Volume, error) {
	if err := p.validate(3); err != nil {
		return nil, err
	}
	src = rng.Or(src)
	if p.Polarization == 1 {
		return exponential3(src, p), nil
	}
	y := realizations3(src, p, 2)
	return blend3(p.Polarization, y[0], y[1]), nil
}

// Rayleigh3D is the 3-D counterpart of Rayleigh.
func Rayleigh3D(src *rng.Source, p Params) (*field.Volume, error) {
	p.Polarization = 0
	return Exponential3D(src, p)
}

// Realizations3D is the 3-D counterpart of Realizations.
func Realizations3D(src *rng.Source, p Params, n int) ([]*field.Volume, error) {
	p.Polarization = 1
	if err := p.validate(3); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, argerr.New("number of realizations is negative: %d", n)
	}
	return realizations3(rng.Or(src), p, n), nil
}

// Unmasked synthesizes objective speckle through a fully open square
// aperture of edge pixPerSpeckle*size, with no mask applied.
func Unmasked(src *rng.Source, size int, pixPerSpeckle float64) (*mat.Dense, error) {
	err := argerr.First(
		argerr.PositiveInt("size", size),
		argerr.Positive("pix per speckle", pixPerSpeckle),
	)
	if err != nil {
		return nil, err
	}
	l := int(pixPerSpeckle * float64(size))
	if l < size {
		return nil, argerr.New("aperture %d smaller than output %d (pix per speckle %g)", l, size, pixPerSpeckle)
	}
	// Every point inside, by the floor-sum rule with radii l.
	m, err := mask.New2(l, l, l, mask.Rectangle)
	if err != nil {
		return nil, err
	}
	y := intensity2(randomPhase2(rng.Or(src), m), size)
	field.MaxNormalize(y)
	return y, nil
}

// Each realization continues the stream of src,
// so no two share their random phases.
func realizations2(src *rng.Source, p Params, n int) []*mat.Dense {
	y := make([]*mat.Dense, n)
	for i := range y {
		y[i] = exponential2(src, p)
	}
	return y
}

func realizations3(src *rng.Source, p Params, n int) []*field.Volume {
	y := make([]*field.Volume, n)
	for i := range y {
		y[i] = exponential3(src, p)
	}
	return y
}

// Assumes p has been validated.
func exponential2(src *rng.Source, p Params) *mat.Dense {
	xr, yr := p.Radii2()
	l := p.Oversample(max(xr, yr))
	m, err := mask.New2(l, xr, yr, p.Shape)
	if err != nil {
		panic(err)
	}
	y := intensity2(randomPhase2(src, m), p.Size)
	field.MaxNormalize(y)
	return y
}

func exponential3(src *rng.Source, p Params) *field.Volume {
	xr, yr, zr := p.Radii3()
	l := p.Oversample(max(xr, yr, zr))
	m, err := mask.New3(l, xr, yr, zr, p.Shape)
	if err != nil {
		panic(err)
	}
	y := intensity3(randomPhase3(src, m), p.Size)
	field.MaxNormalizeVolume(y)
	return y
}

func blend(pol float64, y1, y2 *mat.Dense) *mat.Dense {
	return field.Blend(0.5*(1+pol), y1, 0.5*(1-pol), y2)
}

func blend3(pol float64, y1, y2 *field.Volume) *field.Volume {
	return field.BlendVolume(0.5*(1+pol), y1, 0.5*(1-pol), y2)
}
