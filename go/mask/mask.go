package mask

import "github.com/scottprahl/gospeckle/go/argerr"

// Mask2 is a boolean support over an L x L grid.
type Mask2 struct {
	Size int
	// Elems[x][y]
	Elems [][]bool
}

// Mask3 is a boolean support over an L x L x L grid.
type Mask3 struct {
	Size int
	// Elems[x][y][z]
	Elems [][][]bool
}

func newMask2(size int) *Mask2 {
	elems := make([][]bool, size)
	for x := range elems {
		elems[x] = make([]bool, size)
	}
	return &Mask2{size, elems}
}

func newMask3(size int) *Mask3 {
	elems := make([][][]bool, size)
	for x := range elems {
		elems[x] = make([][]bool, size)
		for y := range elems[x] {
			elems[x][y] = make([]bool, size)
		}
	}
	return &Mask3{size, elems}
}

// At reports whether (x, y) is inside the aperture.
func (m *Mask2) At(x, y int) bool {
	return m.Elems[x][y]
}

// At reports whether (x, y, z) is inside the aperture.
func (m *Mask3) At(x, y, z int) bool {
	return m.Elems[x][y][z]
}

// Count gives the number of points inside the aperture.
func (m *Mask2) Count() int {
	var n int
	for x := range m.Elems {
		for y := range m.Elems[x] {
			if m.Elems[x][y] {
				n++
			}
		}
	}
	return n
}

// Count gives the number of points inside the aperture.
func (m *Mask3) Count() int {
	var n int
	for x := range m.Elems {
		for y := range m.Elems[x] {
			for z := range m.Elems[x][y] {
				if m.Elems[x][y][z] {
					n++
				}
			}
		}
	}
	return n
}

// New2 builds a 2-D mask of size l with the given radii.
// The ellipse is centred at (xr, yr), the annulus at (rmax, rmax).
func New2(l, xr, yr int, shape Shape) (*Mask2, error) {
	if err := argerr.First(
		argerr.PositiveInt("mask size", l),
		argerr.PositiveInt("x radius", xr),
		argerr.PositiveInt("y radius", yr),
	); err != nil {
		return nil, err
	}
	m := newMask2(l)
	var in func(x, y int) bool
	switch shape {
	case Rectangle:
		in = func(x, y int) bool {
			return floorHalf(x, xr)+floorHalf(y, yr) < 1
		}
	case Annulus:
		rmax, rmin := max(xr, yr), min(xr, yr)
		in = func(x, y int) bool {
			return inShell(sqr(x-rmax)+sqr(y-rmax), rmax, rmin)
		}
	default:
		in = func(x, y int) bool {
			// (dx/xr)^2 + (dy/yr)^2 < 1, cleared of denominators.
			a, b := sqr(xr), sqr(yr)
			return sqr(x-xr)*b+sqr(y-yr)*a < a*b
		}
	}
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			m.Elems[x][y] = in(x, y)
		}
	}
	return m, nil
}

// New3 builds a 3-D mask of size l with the given radii.
// The ellipsoid is centred at (xr, yr, zr), the shell at (rmax, rmax, rmax).
func New3(l, xr, yr, zr int, shape Shape) (*Mask3, error) {
	if err := argerr.First(
		argerr.PositiveInt("mask size", l),
		argerr.PositiveInt("x radius", xr),
		argerr.PositiveInt("y radius", yr),
		argerr.PositiveInt("z radius", zr),
	); err != nil {
		return nil, err
	}
	m := newMask3(l)
	var in func(x, y, z int) bool
	switch shape {
	case Rectangle:
		in = func(x, y, z int) bool {
			return floorHalf(x, xr)+floorHalf(y, yr)+floorHalf(z, zr) < 1
		}
	case Annulus:
		rmax, rmin := max(xr, yr, zr), min(xr, yr, zr)
		in = func(x, y, z int) bool {
			return inShell(sqr(x-rmax)+sqr(y-rmax)+sqr(z-rmax), rmax, rmin)
		}
	default:
		in = func(x, y, z int) bool {
			a, b, c := sqr(xr), sqr(yr), sqr(zr)
			return sqr(x-xr)*b*c+sqr(y-yr)*a*c+sqr(z-zr)*a*b < a*b*c
		}
	}
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				m.Elems[x][y][z] = in(x, y, z)
			}
		}
	}
	return m, nil
}

// Reports whether squared distance d2 lies within the outer radius
// and beyond the inner radius. Equal radii give the full disk.
func inShell(d2 int64, rmax, rmin int) bool {
	if d2 > sqr(rmax) {
		return false
	}
	if rmin == rmax {
		return true
	}
	return d2 > sqr(rmin)
}

// floor(p / r / 2) for p >= 0, r > 0.
func floorHalf(p, r int) int {
	return p / (2 * r)
}

func sqr(x int) int64 {
	return int64(x) * int64(x)
}
