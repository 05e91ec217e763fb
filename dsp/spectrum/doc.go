// Package spectrum computes power spectra of real signals.
//
// [PowerSpectrum] returns the one-sided estimate |X[k]|^2/N over the first
// N/2 DFT bins together with the matching bin frequencies, which is the
// periodogram form used to show how clipping and windowing a segment change
// its spectral content. The DFT itself comes from algo-fft; squared
// magnitudes use the algo-vecmath kernels.
package spectrum
