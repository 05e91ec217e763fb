// Package median implements a sliding-window median filter.
//
// Unlike a linear smoother, the median ignores isolated outliers entirely as
// long as fewer than half the samples in the window are affected.
package median

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrKernelSize is returned for kernels shorter than one sample.
	ErrKernelSize = errors.New("median: kernel size must be >= 1")
	// ErrEvenKernel is returned for even kernel sizes, which have no centre sample.
	ErrEvenKernel = errors.New("median: kernel size must be odd")
)

// Filter returns the running median of x over a centred window of kernel
// samples. Samples outside x are treated as zero, so the output has the
// same length as the input.
func Filter(x []float64, kernel int) ([]float64, error) {
	if kernel < 1 {
		return nil, fmt.Errorf("%w: %d", ErrKernelSize, kernel)
	}
	if kernel%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenKernel, kernel)
	}

	out := make([]float64, len(x))
	half := kernel / 2
	win := make([]float64, kernel)
	for i := range x {
		for k := range win {
			j := i - half + k
			if j < 0 || j >= len(x) {
				win[k] = 0
				continue
			}
			win[k] = x[j]
		}
		slices.Sort(win)
		out[i] = win[half]
	}
	return out, nil
}
