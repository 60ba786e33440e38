package autocov

// Total is the summation over images so far.
type Total struct {
	// Sum over pixel values.
	MeanTotal float64
	// Sum over products of pixel pairs per displacement.
	CovarTotal *Covar
	// Number of pixel pairs per displacement.
	Count *Count
	// Number of images visited.
	Images int
}

// Distr specifies a stationary distribution in terms of
// its mean and autocovariance.
type Distr struct {
	Mean  float64
	Covar *Covar
}

// Combine two totals.
// Neither operand can be nil.
func AddTotal(lhs, rhs *Total) *Total {
	return &Total{
		MeanTotal:  lhs.MeanTotal + rhs.MeanTotal,
		CovarTotal: AddCovar(lhs.CovarTotal, rhs.CovarTotal),
		Count:      AddCount(lhs.Count, rhs.Count),
		Images:     lhs.Images + rhs.Images,
	}
}

// Combine two totals.
// One of the inputs may be modified.
// If either operand is nil, then the other is returned.
func AddTotalToEither(lhs, rhs *Total) *Total {
	if rhs == nil {
		return lhs
	}
	if lhs == nil {
		return rhs
	}
	return &Total{
		MeanTotal:  lhs.MeanTotal + rhs.MeanTotal,
		CovarTotal: AddCovarToEither(lhs.CovarTotal, rhs.CovarTotal),
		Count:      AddCount(lhs.Count, rhs.Count),
		Images:     lhs.Images + rhs.Images,
	}
}

// Normalize divides the sums by the number of observations
// to obtain the expected value and the expected product per displacement.
// Normalization is performed per displacement,
// which does not guarantee a positive semidefinite matrix.
//
// With center set, the squared mean is subtracted to give a covariance.
// Otherwise the result is the second moment.
func Normalize(total *Total, center bool) *Distr {
	mean := total.MeanTotal / float64(total.Count.At(0, 0))
	cov := normCovar(total.CovarTotal, total.Count)
	if center {
		cov.Center(mean)
	}
	return &Distr{mean, cov}
}

func normCovar(total *Covar, count *Count) *Covar {
	cov := total.Clone()
	for i := -cov.Band; i <= cov.Band; i++ {
		for j := -cov.Band; j <= cov.Band; j++ {
			cov.Set(i, j, cov.At(i, j)/float64(count.At(i, j)))
		}
	}
	return cov
}
