package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/dsp-figures/dsp/core"
)

var (
	errLength = errors.New("signal: length must be > 0")
	errRange  = errors.New("signal: index range out of bounds")
)

// Impulse returns a unit impulse of the given length at pos.
func Impulse(length, pos int) ([]float64, error) {
	if length <= 0 {
		return nil, errLength
	}
	if pos < 0 || pos >= length {
		return nil, fmt.Errorf("%w: impulse at %d, length %d", errRange, pos, length)
	}
	out := make([]float64, length)
	out[pos] = 1
	return out, nil
}

// Step returns a signal that is zero before at and level from at onwards.
func Step(length, at int, level float64) ([]float64, error) {
	if length <= 0 {
		return nil, errLength
	}
	if at < 0 || at > length {
		return nil, fmt.Errorf("%w: step at %d, length %d", errRange, at, length)
	}
	out := make([]float64, length)
	for i := at; i < length; i++ {
		out[i] = level
	}
	return out, nil
}

// Pulse is a half-open index interval [Start, End) set to one by [Pulses].
type Pulse struct {
	Start, End int
}

// Pulses returns a zero signal with unit-height rectangular pulses.
func Pulses(length int, pulses ...Pulse) ([]float64, error) {
	if length <= 0 {
		return nil, errLength
	}
	out := make([]float64, length)
	for _, p := range pulses {
		if err := checkRange(p.Start, p.End, length); err != nil {
			return nil, err
		}
		for i := p.Start; i < p.End; i++ {
			out[i] = 1
		}
	}
	return out, nil
}

// ZeroRange clears x[start:end] in place. end is clamped to len(x).
func ZeroRange(x []float64, start, end int) error {
	if end > len(x) {
		end = len(x)
	}
	if err := checkRange(start, end, len(x)); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		x[i] = 0
	}
	return nil
}

// SetSpikes overwrites x at each position with value.
func SetSpikes(x []float64, value float64, positions ...int) error {
	for _, p := range positions {
		if p < 0 || p >= len(x) {
			return fmt.Errorf("%w: spike at %d, length %d", errRange, p, len(x))
		}
		x[p] = value
	}
	return nil
}

// Range returns start, start+step, ... up to but excluding stop.
func Range(start, stop, step float64) []float64 {
	if step == 0 || (step > 0 && start >= stop) || (step < 0 && start <= stop) {
		return nil
	}
	n := int((stop - start) / step)
	if !core.NearlyEqual(start+float64(n)*step, stop, 0) {
		n++
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := start + float64(i)*step
		if (step > 0 && v >= stop) || (step < 0 && v <= stop) {
			break
		}
		out = append(out, v)
	}
	return out
}

func checkRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return fmt.Errorf("%w: [%d, %d) of %d", errRange, start, end, length)
	}
	return nil
}
