/*
Package stats provides first- and second-order statistics of speckle
signals: autocorrelation, local and global contrast, power spectra and
intensity histograms.

Correlations are computed in the Fourier domain; the direct methods are kept
for verification and for small kernels.

Degenerate inputs are not errors: the autocorrelation of a constant signal is
all zero, and the local contrast is non-finite wherever the local mean is zero.
*/
package stats
