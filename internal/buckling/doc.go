// Package buckling implements the closed-form design formulas for axially
// loaded columns from Shigley's Mechanical Engineering Design
// (Budynas & Nisbett, 2008, chap. 4): Euler elastic buckling for slender
// columns, the Johnson parabola for intermediate-length ones, and the
// transition-slenderness test that decides which formula governs.
//
// Every function is a pure, stateless computation over scalars and is safe
// to call from any number of goroutines. Inputs are consistent SI units
// (N, m, Pa, m², m⁴); no function converts units.
//
// All physical quantities must be strictly positive. Each function checks
// its own inputs before forming a ratio or root and reports a sentinel
// error (ErrInvalidLength, ErrInvalidArea, …) naming the offending
// quantity; no Inf or NaN ever escapes in place of a failure.
package buckling
