package figures

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/cwbudde/dsp-figures/figure"
)

// ErrUnknownFigure is returned by Run for names missing from the registry.
var ErrUnknownFigure = errors.New("figures: unknown figure")

// Entry describes one renderable figure.
type Entry struct {
	// Name is the registry key, e.g. "fir-vs-iir".
	Name string
	// File is the output file name, e.g. "FIRvsIIR.jpg".
	File string
	// Summary is a one-line description.
	Summary string
	// Build lays out the figure.
	Build func(opts ...figure.Option) (*figure.Figure, error)
}

// SaveTo builds the figure and writes it to path.
func (e Entry) SaveTo(path string, opts ...figure.Option) error {
	fig, err := e.Build(opts...)
	if err != nil {
		return fmt.Errorf("figures: build %s: %w", e.Name, err)
	}
	return fig.Save(path)
}

// SaveIn writes the figure to dir/File and returns the path.
func (e Entry) SaveIn(dir string, opts ...figure.Option) (string, error) {
	path := filepath.Join(dir, e.File)
	return path, e.SaveTo(path, opts...)
}

var registry = []Entry{
	{
		Name:    "fir-vs-iir",
		File:    "FIRvsIIR.jpg",
		Summary: "impulse through a 5-tap average and a first-order recursive filter",
		Build:   FIRvsIIRFigure,
	},
	{
		Name:    "signal",
		File:    "signal.jpg",
		Summary: "two rectangular pulses used for the autocorrelation",
		Build:   PulseSignalFigure,
	},
	{
		Name:    "autocorrelation",
		File:    "autoCorrelation.jpg",
		Summary: "full autocorrelation of the pulse signal against shift",
		Build:   AutoCorrelationFigure,
	},
	{
		Name:    "clipping-effect",
		File:    "STFT_clip.jpg",
		Summary: "cosine, clipped cosine and Hann-windowed clip with power spectra",
		Build:   ClippingFigure,
	},
	{
		Name:    "median-filter",
		File:    "MedianFilter.jpg",
		Summary: "moving average vs. median filter on a step with outliers",
		Build:   MedianFilterFigure,
	},
}

// All returns every registered figure in catalogue order.
func All() []Entry {
	return slices.Clone(registry)
}

// Lookup returns the figure registered under name.
func Lookup(name string) (Entry, bool) {
	i := slices.IndexFunc(registry, func(e Entry) bool { return e.Name == name })
	if i < 0 {
		return Entry{}, false
	}
	return registry[i], true
}

// Run renders the named figures to their files, resolved with
// figure.OutputPath. It stops at the first failure.
func Run(names ...string) error {
	for _, name := range names {
		e, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFigure, name)
		}
		if err := e.SaveTo(figure.OutputPath(e.File)); err != nil {
			return err
		}
	}
	return nil
}

func indexAxis(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
