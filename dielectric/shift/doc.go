// Package shift translates the imaginary part of a dielectric function along
// the energy axis.
//
// [Shift] evaluates eps2 at E-delta on the original grid and scales it by the
// factor (E-delta)/(E+r), which preserves integrated oscillator strength under a
// band-gap shift. The regulariser r keeps the factor finite when a grid sample
// sits at 0 eV.
//
// The shift is applied in whole grid steps. Samples at the edge that have no
// source sample are frozen to the nearest computed value, so results are
// inaccurate within |delta| of the window edge. Callers should pass a wider
// energy window than the region they care about.
package shift
