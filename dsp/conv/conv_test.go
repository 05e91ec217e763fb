package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/dsp-figures/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	shortKernel := []float64{1, 2, 1}
	result1, err := Convolve(signal, shortKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	directResult, _ := Direct(signal, shortKernel)
	testutil.RequireSliceNearlyEqual(t, result1, directResult, 1e-10)

	// Long kernels take the FFT path.
	longKernel := make([]float64, 100)
	for i := range longKernel {
		longKernel[i] = math.Exp(-float64(i) / 20)
	}
	result2, err := Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	directResult2, _ := Direct(signal, longKernel)

	maxDiff, err := testutil.MaxAbsDiff(result2, directResult2)
	if err != nil {
		t.Fatal(err)
	}
	if maxDiff > 1e-8 {
		t.Errorf("long kernel max difference %v exceeds tolerance", maxDiff)
	}
}

func TestConvolveCommutative(t *testing.T) {
	ab, _ := Convolve([]float64{1, 2, 3}, []float64{4, 5})
	ba, _ := Convolve([]float64{4, 5}, []float64{1, 2, 3})
	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, _ := ConvolveMode(a, b, ModeFull)
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, expected %d", len(full), len(a)+len(b)-1)
	}
	same, _ := ConvolveMode(a, b, ModeSame)
	testutil.RequireSliceNearlyEqual(t, same, []float64{4, 10, 16, 22, 22}, 1e-12)
	valid, _ := ConvolveMode(a, b, ModeValid)
	testutil.RequireSliceNearlyEqual(t, valid, []float64{10, 16, 22}, 1e-12)
}

func TestCorrelateIsConvolutionWithReversedKernel(t *testing.T) {
	a := testutil.DeterministicNoise(3, 1, 40)
	b := testutil.DeterministicNoise(4, 1, 9)

	corr, err := Correlate(a, b)
	if err != nil {
		t.Fatal(err)
	}
	conv, err := Convolve(a, testutil.Reversed(b))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireBitIdentical(t, corr, conv)
}

func TestCorrelateTemplate(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{0, 1, 0.5}

	// c[k] for lags -2..2: a shifted against b.
	got, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	want := []float64{0.5, 2, 3.5, 3, 0}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestAutoCorrelatePulseTrain(t *testing.T) {
	// Two 3-sample pulses 7 samples apart.
	x := make([]float64, 20)
	for _, i := range []int{7, 8, 9, 14, 15, 16} {
		x[i] = 1
	}

	acf, err := AutoCorrelate(x)
	if err != nil {
		t.Fatalf("AutoCorrelate failed: %v", err)
	}
	if len(acf) != 39 {
		t.Fatalf("len = %d, want 39", len(acf))
	}

	wantByLag := map[int]float64{0: 6, 1: 4, 2: 2, 3: 0, 4: 0, 5: 1, 6: 2, 7: 3, 8: 2, 9: 1, 10: 0, 19: 0}
	for lag, want := range wantByLag {
		for _, l := range []int{lag, -lag} {
			got := acf[IndexFromLag(l, len(x))]
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("acf[lag %d] = %v, want %v", l, got, want)
			}
		}
	}

	peakIdx, peakVal := FindPeak(acf)
	if LagFromIndex(peakIdx, len(x)) != 0 || peakVal != 6 {
		t.Errorf("peak at lag %d value %v, want lag 0 value 6", LagFromIndex(peakIdx, len(x)), peakVal)
	}
}

func TestAutoCorrelateCosinePeaksAtZeroLag(t *testing.T) {
	n := 256
	signal := testutil.DeterministicCosine(1, 32, 1, n)

	result, err := AutoCorrelate(signal)
	if err != nil {
		t.Fatalf("auto-correlation failed: %v", err)
	}
	if peakIdx, _ := FindPeak(result); peakIdx != n-1 {
		t.Errorf("peak at index %d, expected %d (lag %d)", peakIdx, n-1, LagFromIndex(peakIdx, n))
	}
}

func TestAutoCorrelateNormalized(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	result, err := AutoCorrelateNormalized(a)
	if err != nil {
		t.Fatalf("normalized auto-correlation failed: %v", err)
	}
	if math.Abs(result[len(a)-1]-1.0) > 1e-10 {
		t.Errorf("zero-lag value %v, expected 1.0", result[len(a)-1])
	}

	zeros, err := AutoCorrelateNormalized([]float64{0, 0})
	if err != nil {
		t.Fatalf("normalized auto-correlation failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, zeros, []float64{0, 0, 0}, 0)
}

func TestCorrelateFFT(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	result, err := CorrelateFFT(a, b)
	if err != nil {
		t.Fatalf("CorrelateFFT failed: %v", err)
	}
	direct, _ := Correlate(a, b)
	testutil.RequireSliceNearlyEqual(t, result, direct, 1e-8)

	if _, err := CorrelateFFT([]float64{}, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCorrelateMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, err := CorrelateMode(a, b, ModeFull)
	if err != nil {
		t.Fatalf("CorrelateMode failed: %v", err)
	}
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, expected %d", len(full), len(a)+len(b)-1)
	}
	if same, _ := CorrelateMode(a, b, ModeSame); len(same) != len(a) {
		t.Errorf("same mode length: got %d, expected %d", len(same), len(a))
	}
	if valid, _ := CorrelateMode(a, b, ModeValid); len(valid) != len(a)-len(b)+1 {
		t.Errorf("valid mode length: got %d, expected %d", len(valid), len(a)-len(b)+1)
	}
}

func TestLags(t *testing.T) {
	got := Lags(3, 2)
	want := []int{-1, 0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lags[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if Lags(0, 3) != nil {
		t.Fatal("expected nil lags for empty input")
	}
}

func TestLagConversion(t *testing.T) {
	for _, lag := range []int{-4, 0, 3} {
		if got := LagFromIndex(IndexFromLag(lag, 5), 5); got != lag {
			t.Errorf("round trip lag %d -> %d", lag, got)
		}
	}
}

func TestFindPeakEmpty(t *testing.T) {
	idx, val := FindPeak(nil)
	if idx != -1 || val != 0 {
		t.Errorf("FindPeak(nil) = (%d, %v), want (-1, 0)", idx, val)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ n, want int }{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {39, 64}, {64, 64}}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.n); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
