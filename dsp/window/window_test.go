package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateLengthsAndFinite(t *testing.T) {
	types := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeTriangle}

	for _, typ := range types {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}
			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestSymmetricWindowsAreSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeTriangle} {
		w := Generate(typ, 201)
		for i := range w {
			if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
				t.Fatalf("%s not symmetric at %d: %v vs %v", Info(typ).Name, i, w[i], w[len(w)-1-i])
			}
		}
	}
}

func TestHannOddLengthPeaksAtCentre(t *testing.T) {
	w, err := Hann(201)
	if err != nil {
		t.Fatal(err)
	}
	if w[0] != 0 || w[200] != 0 {
		t.Fatalf("edges = %v, %v, want 0", w[0], w[200])
	}
	if !almostEqual(w[100], 1, 1e-15) {
		t.Fatalf("centre = %v, want 1", w[100])
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	// Periodic Hann of length N equals the first N samples of symmetric N+1.
	c := Generate(TypeHann, 17)
	checkGolden(t, b, c[:16], 1e-12)
	if almostEqual(a[15], b[15], 1e-6) {
		t.Fatalf("expected last sample to differ: %v vs %v", a[15], b[15])
	}
}

func TestSingleSampleWindowIsOne(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeBlackman} {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%s length-1 window = %v, want [1]", Info(typ).Name, w)
		}
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	Apply(TypeRectangular, buf)

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	Apply(TypeHann, buf)
	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}
}

func TestApplySegment(t *testing.T) {
	buf := []float64{2, 2, 2, 2, 2, 2}
	if err := ApplySegment(buf, 1, []float64{0, 0.5, 1}); err != nil {
		t.Fatal(err)
	}
	checkGolden(t, buf, []float64{2, 0, 1, 2, 2, 2}, 0)

	if err := ApplySegment(buf, 4, []float64{1, 1, 1}); !errors.Is(err, errSegmentRange) {
		t.Fatalf("expected errSegmentRange, got %v", err)
	}
	if err := ApplySegment(buf, 0, nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("expected errEmptyCoeffs, got %v", err)
	}
}

func TestMetadataAndENBW(t *testing.T) {
	m := Info(TypeHann)
	if m.Name != "Hann" {
		t.Fatalf("name=%q", m.Name)
	}

	w := Generate(TypeHann, 2048)
	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth error: %v", err)
	}
	if !almostEqual(enbw, m.ENBW, 0.01) {
		t.Fatalf("hann ENBW=%v, want ~%v", enbw, m.ENBW)
	}
}

func TestCompatibilityWrappers(t *testing.T) {
	if _, err := Hann(64); err != nil {
		t.Fatal(err)
	}
	if _, err := Hamming(64); err != nil {
		t.Fatal(err)
	}
	if _, err := Blackman(64); err != nil {
		t.Fatal(err)
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(out[2], 1.5, 1e-12) {
		t.Fatalf("out[2]=%v", out[2])
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeTriangle, 5), []float64{0, 0.5, 1, 0.5, 0}, 1e-12)
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}
	if _, err := Hann(0); err == nil {
		t.Fatal("expected size validation error")
	}
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}
	if _, err := EquivalentNoiseBandwidth([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}
	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
