/*
Package mask builds the aperture masks over which random phase is laid
before the Fourier transform.

A mask is defined on an L x L (or L x L x L) grid of integer points.
The radii are integers; the synthesizer truncates them toward zero before
building the mask.

	m, err := mask.New2(64, 16, 8, mask.ParseShape("ellipse"))
	if err != nil {
		return err
	}
	if m.At(16, 8) {
		// centre of the ellipse
	}

Three shape families exist, each with a 2-D and a 3-D form:
	Ellipse    ellipse / ellipsoid
	Rectangle  rectangle / cube
	Annulus    annulus / shell

The rectangle rule is a floor-sum test, floor(x/rx/2) + floor(y/ry/2) < 1,
and the annulus measures both radii from a single centre at (rmax, rmax).
*/
package mask
