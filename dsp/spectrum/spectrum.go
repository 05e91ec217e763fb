package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput is returned for empty signals.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrSampleRate is returned for non-positive sample rates.
	ErrSampleRate = errors.New("spectrum: sample rate must be > 0")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	return unpacked(in, vecmath.Magnitude)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	return unpacked(in, vecmath.Power)
}

func unpacked(in []complex128, kernel func(dst, re, im []float64)) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	kernel(out, re, im)
	scratchPool.Put(buf)
	return out
}

// FFTFreq returns the DFT sample frequencies for a transform of length n
// with sample spacing d, in the standard order: 0, 1, ..., then negatives.
func FFTFreq(n int, d float64) []float64 {
	if n <= 0 || d <= 0 {
		return nil
	}
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	positive := (n-1)/2 + 1
	for k := range out {
		bin := k
		if k >= positive {
			bin = k - n
		}
		out[k] = float64(bin) * scale
	}
	return out
}

// Transform returns the complex DFT of a real signal.
func Transform(data []float64) ([]complex128, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := newPlan(len(data))
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d samples: %w", len(data), err)
	}

	in := make([]complex128, len(data))
	for i, v := range data {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, len(data))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}
	return out, nil
}

// newPlan returns a forward plan for n points. The default planner only
// handles powers of two reliably; every other length uses Bluestein's
// algorithm.
func newPlan(n int) (*algofft.Plan[complex128], error) {
	if n&(n-1) == 0 {
		return algofft.NewPlan64(n)
	}
	return algofft.NewPlanWithOptions[complex128](n, algofft.PlanOptions{
		Strategy: algofft.KernelBluestein,
	})
}

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2/N of data and
// the frequencies in Hz of those bins, both of length N/2.
func PowerSpectrum(data []float64, sampleRate float64) (pxx, freq []float64, err error) {
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: %f", ErrSampleRate, sampleRate)
	}

	bins, err := Transform(data)
	if err != nil {
		return nil, nil, err
	}

	n := len(data)
	nyq := n / 2
	pxx = Power(bins[:nyq])
	invN := 1 / float64(n)
	for i := range pxx {
		pxx[i] *= invN
	}
	freq = FFTFreq(n, 1/sampleRate)[:nyq]
	return pxx, freq, nil
}

// Band returns the sub-slices of pxx and freq with lo <= freq <= hi.
func Band(pxx, freq []float64, lo, hi float64) ([]float64, []float64) {
	start, end := -1, -1
	for i, f := range freq {
		if f < lo || f > hi {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i + 1
	}
	if start < 0 {
		return nil, nil
	}
	return pxx[start:end], freq[start:end]
}
