// Package conv provides linear convolution and correlation of real signals.
//
// Short kernels are convolved directly in the time domain; longer ones go
// through a zero-padded FFT. Both paths return the full result of length
// len(a)+len(b)-1, which [ConvolveMode] and [CorrelateMode] trim to the
// "same" or "valid" portion.
//
// # Correlation
//
// Cross-correlation index k corresponds to lag k-(len(b)-1):
//
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(template))
//
// Auto-correlation of a pulse train shows one peak per matching shift:
//
//	acf, err := conv.AutoCorrelate(x)
//	shifts := conv.Lags(len(x), len(x))
package conv
