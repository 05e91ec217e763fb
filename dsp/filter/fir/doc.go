// Package fir provides a direct-form FIR filter and the moving-average
// kernels used to illustrate finite impulse responses.
//
// [Apply] is the one-shot form: it filters a whole signal with zero initial
// state, so its output equals lfilter(b, 1, x) and has the input's length.
// A [Filter] keeps its delay line between calls for sample-by-sample use.
package fir
