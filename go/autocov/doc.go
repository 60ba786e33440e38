/*
Package autocov estimates the stationary autocovariance of speckle images.

To accumulate evidence from several realizations and measure the speckle size:
	func size(ims []*mat.Dense, band int) (float64, float64) {
		var total *autocov.Total
		for _, im := range ims {
			curr := autocov.Stats(im, band)
			total = autocov.AddTotalToEither(total, curr)
		}
		distr := autocov.Normalize(total, true)
		return autocov.SpeckleSize(distr.Covar)
	}

Images are indexed with rows along y and columns along x.
Displacements (dx, dy) range over [-Band, Band] in both directions.
*/
package autocov
