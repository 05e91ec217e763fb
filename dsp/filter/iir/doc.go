// Package iir provides a recursive filter of arbitrary order defined by
// numerator and denominator polynomials.
//
// A [Filter] uses Direct Form II Transposed processing, generalizing the
// second-order section to any order:
//
//	a[0]*y[n] = b[0]*x[n] + ... + b[M]*x[n-M] - a[1]*y[n-1] - ... - a[N]*y[n-N]
//
// Coefficients are normalized by a[0] on construction. [LFilter] filters a
// whole signal from a zero state, so a pure FIR kernel can be applied with
// a = []float64{1}.
package iir
