/*
Package speckle synthesizes speckle intensity fields by Fourier transforming
a random-phase aperture.

A field with exponential (fully developed, polarized) statistics:
	p := speckle.DefaultParams(256, 4)
	im, err := speckle.Exponential(rng.New(1), p)
Unpolarized speckle with Rayleigh statistics is the mean of two independent
realizations:
	im, err := speckle.Rayleigh(nil, p)
A nil source draws from the process-wide source in package rng.

The aperture radii are M/2 along x and alpha*M/2 along y (beta*M/2 along z),
truncated toward zero. The aperture is placed on a grid of
L = pix_per_speckle * 2 * max(radii) points, so that pix_per_speckle is the
average number of pixels across a speckle; 2 is Nyquist sampling.
*/
package speckle
