package conv

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1 and index k corresponds to
// lag k - (len(b) - 1):
//
//	c[k] = sum_n a[n+k-(len(b)-1)] * b[n]
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return Convolve(a, reversed(b))
}

// CorrelateFFT computes the same result as [Correlate] through the FFT path
// regardless of length.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	return FFT(a, reversed(b))
}

// CorrelateMode computes cross-correlation with specified output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the full auto-correlation of a.
// The result has length 2*len(a) - 1, symmetric around index len(a)-1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// AutoCorrelateNormalized scales the auto-correlation so the zero-lag value
// is 1. An all-zero input is returned unscaled.
func AutoCorrelateNormalized(a []float64) ([]float64, error) {
	result, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	zeroLag := result[len(a)-1]
	if zeroLag == 0 {
		return result, nil
	}
	for i := range result {
		result[i] /= zeroLag
	}
	return result, nil
}

// Lags returns the lag of every index of a full correlation of signals with
// lengths lenA and lenB: -(lenB-1), ..., lenA-1.
func Lags(lenA, lenB int) []int {
	if lenA <= 0 || lenB <= 0 {
		return nil
	}
	out := make([]int, lenA+lenB-1)
	for i := range out {
		out[i] = LagFromIndex(i, lenB)
	}
	return out
}

// FindPeak finds the index and value of the maximum in a correlation result.
// The first maximum wins on ties.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]
	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}
	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}
