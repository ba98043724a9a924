// Package kk reconstructs the real part of a dielectric function from its
// imaginary part with a principal-value Kramers–Kronig integral:
//
//	eps1(E) = 1 + (2/π) · PV∫ E'·eps2(E') / (E'² − E²) dE'
//
// The default [MethodPaired] uses a trapezoid rule that walks outward from the
// pole and adds the two samples symmetric about it before accumulating them.
// The terms on either side of the pole are large and of opposite sign, so
// pairing them first keeps densely sampled spectra from losing all precision.
// The pole sample itself is never evaluated. The spectrum is taken to vanish
// outside the grid, so every evaluated sample carries trapezoid weight 2.
//
// Each output sample is independent; [Integrate] spreads samples across a
// bounded worker pool. [MethodFFT] computes the same sums in O(N log N) by
// splitting the kernel into Toeplitz and Hankel parts and convolving them
// with an FFT.
//
// # Usage
//
//	eps1, err := kk.Integrate(energy, eps2, dE, kk.WithWorkers(8))
package kk
