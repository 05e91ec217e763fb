package iir

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/dsp-figures/dsp/core"
)

var (
	// ErrEmptyNumerator is returned when b has no coefficients.
	ErrEmptyNumerator = errors.New("iir: empty numerator")
	// ErrEmptyDenominator is returned when a has no coefficients.
	ErrEmptyDenominator = errors.New("iir: empty denominator")
	// ErrZeroLeadingDenominator is returned when a[0] is zero.
	ErrZeroLeadingDenominator = errors.New("iir: a[0] must be non-zero")
)

// Filter is a Direct Form II Transposed IIR filter with internal state.
type Filter struct {
	b, a  []float64
	state []float64
}

// New returns a Filter for the transfer function B(z)/A(z). Both slices are
// copied, padded to a common length, and divided by a[0].
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 {
		return nil, ErrEmptyNumerator
	}
	if len(a) == 0 {
		return nil, ErrEmptyDenominator
	}
	if a[0] == 0 {
		return nil, ErrZeroLeadingDenominator
	}

	n := max(len(b), len(a))
	nb := make([]float64, n)
	na := make([]float64, n)
	a0 := a[0]
	for i, v := range b {
		nb[i] = v / a0
	}
	for i, v := range a {
		na[i] = v / a0
	}

	return &Filter{
		b:     nb,
		a:     na,
		state: make([]float64, n),
	}, nil
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b[0]*x + f.state[0]
	last := len(f.b) - 1
	for k := 1; k < last; k++ {
		f.state[k-1] = f.b[k]*x - f.a[k]*y + f.state[k]
	}
	if last > 0 {
		f.state[last-1] = f.b[last]*x - f.a[last]*y
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	clear(f.state)
}

// Order returns the filter order (the longer of b and a, minus one).
func (f *Filter) Order() int {
	return len(f.b) - 1
}

// Numerator returns a copy of the normalized, padded numerator.
func (f *Filter) Numerator() []float64 {
	return append([]float64(nil), f.b...)
}

// Denominator returns a copy of the normalized, padded denominator.
func (f *Filter) Denominator() []float64 {
	return append([]float64(nil), f.a...)
}

// ImpulseResponse returns the first n samples of the impulse response of a
// fresh copy of the filter. The receiver's state is not touched.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	g := &Filter{b: f.b, a: f.a, state: make([]float64, len(f.state))}
	out := make([]float64, n)
	out[0] = 1
	g.ProcessBlock(out)
	return out
}

// Response computes H(e^{jw}) = B(e^{jw})/A(e^{jw}) at freqHz for the
// given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k := range f.b {
		z := cmplx.Exp(complex(0, -w*float64(k)))
		num += complex(f.b[k], 0) * z
		den += complex(f.a[k], 0) * z
	}
	return num / den
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// LFilter filters x through B(z)/A(z) starting from a zero state and returns
// a new slice of len(x) samples.
func LFilter(b, a, x []float64) ([]float64, error) {
	f, err := New(b, a)
	if err != nil {
		return nil, err
	}
	out := append(make([]float64, 0, len(x)), x...)
	f.ProcessBlock(out)
	return out, nil
}
