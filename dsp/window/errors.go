package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
	errSegmentRange     = errors.New("window: segment out of range")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateSegment(start, segLen, bufLen int) error {
	if start < 0 || start+segLen > bufLen {
		return fmt.Errorf("%w: [%d, %d) of %d", errSegmentRange, start, start+segLen, bufLen)
	}
	return nil
}
