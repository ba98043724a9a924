// Package phs applies the Parameter-shifted Hilbert-transform Spectra (PHS)
// correction to a dielectric function.
//
// Given an equispaced energy grid and the imaginary part eps2 of a dielectric
// function, typically from a first-principles calculation, [PHS] shifts eps2 by
// the band-gap correction delta and rebuilds a consistent real part with a
// Kramers–Kronig principal-value integral. The method follows M. Nishiwaki and
// H. Fujiwara, Comput. Mater. Sci. 172 (2020) 109315.
//
// The pipeline is:
//
//  1. [grid.Validate] rejects axes whose spacing varies by more than the
//     energy tolerance.
//  2. [shift.Shift] moves eps2 by round(delta/dE) samples and freezes the
//     uncovered edge.
//  3. [kk.Integrate] reconstructs eps1 from the shifted eps2.
//
// Both stages lose accuracy near the ends of the grid, so pass a wider window
// than the range of interest, e.g. 0.5–3.5 eV for results between 1 and 3 eV.
//
// # Usage
//
//	eps1PHS, eps2PHS, err := phs.PHS(len(energy), energy, eps1, eps2, 0.8)
//	if errors.Is(err, phs.ErrNonUniformGrid) {
//		// both outputs are nil
//	}
package phs
