package median

import (
	"errors"
	"testing"

	"github.com/cwbudde/dsp-figures/internal/testutil"
)

func TestFilterRejectsBadKernels(t *testing.T) {
	if _, err := Filter([]float64{1}, 0); !errors.Is(err, ErrKernelSize) {
		t.Fatalf("kernel 0 error = %v, want ErrKernelSize", err)
	}
	if _, err := Filter([]float64{1}, 4); !errors.Is(err, ErrEvenKernel) {
		t.Fatalf("kernel 4 error = %v, want ErrEvenKernel", err)
	}
}

func TestFilterKernelOneIsIdentity(t *testing.T) {
	x := []float64{3, -1, 2, 7}
	got, err := Filter(x, 1)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, x, 0)
}

func TestFilterRemovesSpikes(t *testing.T) {
	tests := []struct {
		name   string
		x      []float64
		kernel int
		want   []float64
	}{
		{
			name:   "spike on zero",
			x:      []float64{0, 0, 3, 0, 0},
			kernel: 3,
			want:   []float64{0, 0, 0, 0, 0},
		},
		{
			name:   "spike on step",
			x:      []float64{0, 0, 1, 3, 1, 1},
			kernel: 3,
			want:   []float64{0, 0, 1, 1, 1, 1},
		},
		{
			name:   "zero padded edges",
			x:      []float64{5, 5, 5},
			kernel: 3,
			want:   []float64{5, 5, 5},
		},
		{
			name:   "wide kernel edge",
			x:      []float64{4, 4, 4, 4},
			kernel: 5,
			want:   []float64{4, 4, 4, 4},
		},
		{
			name:   "single sample",
			x:      []float64{2},
			kernel: 3,
			want:   []float64{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(tt.x, tt.kernel)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 0)
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	got, err := Filter(nil, 3)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
