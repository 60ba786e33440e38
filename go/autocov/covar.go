package autocov

// Covar describes a stationary autocovariance.
type Covar struct {
	Band int
	// Gamma[Band+dx][Band+dy]
	Gamma [][]float64
}

func NewCovar(band int) *Covar {
	n := 2*band + 1
	gamma := make([][]float64, n)
	for i := range gamma {
		gamma[i] = make([]float64, n)
	}
	return &Covar{band, gamma}
}

// dx, dy in [-Band, Band]
func (cov *Covar) At(dx, dy int) float64 {
	b := cov.Band
	return cov.Gamma[b+dx][b+dy]
}

// dx, dy in [-Band, Band]
func (cov *Covar) Set(dx, dy int, v float64) {
	b := cov.Band
	cov.Gamma[b+dx][b+dy] = v
}

// Creates a copy.
func (src *Covar) Clone() *Covar {
	return src.CloneBand(src.Band)
}

// Creates a copy with the specified bandwidth.
// Displacements outside the original band are zero.
func (src *Covar) CloneBand(band int) *Covar {
	dst := NewCovar(band)
	src.CopyTo(dst)
	return dst
}

// Copies the displacements within the smaller of the two bands.
func (src *Covar) CopyTo(dst *Covar) {
	a, b := src.Band, dst.Band
	c := min(a, b)
	for i := -c; i <= c; i++ {
		copy(dst.Gamma[b+i][b-c:b+c+1], src.Gamma[a+i][a-c:a+c+1])
	}
}

// Center subtracts mu^2 at every displacement.
func (cov *Covar) Center(mu float64) {
	cov.apply(func(v float64) float64 { return v - mu*mu })
}

// Correlation returns the autocovariance divided by its value at zero
// displacement.
// If the variance is zero, an unscaled copy is returned.
func (cov *Covar) Correlation() *Covar {
	dst := cov.Clone()
	if v := cov.At(0, 0); v != 0 {
		dst.apply(func(x float64) float64 { return x / v })
	}
	return dst
}

// Downsample takes every n-th displacement in x and y.
func (cov *Covar) Downsample(rate int) *Covar {
	// rate * newBand <= oldBand
	band := cov.Band / rate
	dst := NewCovar(band)
	for dx := -band; dx <= band; dx++ {
		for dy := -band; dy <= band; dy++ {
			dst.Set(dx, dy, cov.At(rate*dx, rate*dy))
		}
	}
	return dst
}

func (cov *Covar) apply(f func(float64) float64) {
	for _, col := range cov.Gamma {
		for j := range col {
			col[j] = f(col[j])
		}
	}
}

// Returns the sum of two autocovariances.
// If one has greater bandwidth than the other,
// the larger bandwidth is adopted.
// Does not modify either input.
func AddCovar(lhs, rhs *Covar) *Covar {
	return addCovar(lhs, rhs, false)
}

// Returns the sum of two autocovariances.
// Could modify either input.
func AddCovarToEither(lhs, rhs *Covar) *Covar {
	return addCovar(lhs, rhs, true)
}

func addCovar(lhs, rhs *Covar, mutate bool) *Covar {
	// Swap pointers such that lhs.Band >= rhs.Band.
	if lhs.Band < rhs.Band {
		lhs, rhs = rhs, lhs
	}
	dst := lhs
	if !mutate {
		dst = dst.Clone()
	}
	for i := -rhs.Band; i <= rhs.Band; i++ {
		for j := -rhs.Band; j <= rhs.Band; j++ {
			dst.Set(i, j, dst.At(i, j)+rhs.At(i, j))
		}
	}
	return dst
}
