package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/dsp-figures/dsp/core"
)

// Generator creates deterministic periodic signals at a configured sample rate.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.oscillate(freqHz, amplitude, samples, math.Sin)
}

// Cosine generates a cosine wave starting at its positive peak.
func (g *Generator) Cosine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.oscillate(freqHz, amplitude, samples, math.Cos)
}

// CosineFor generates a cosine covering [0, duration) seconds.
func (g *Generator) CosineFor(freqHz, amplitude, duration float64) ([]float64, error) {
	n, err := g.cfg.SamplesFor(duration)
	if err != nil {
		return nil, fmt.Errorf("cosine: %w", err)
	}
	return g.Cosine(freqHz, amplitude, n)
}

// TimeAxis returns the sample instants i/SampleRate for i in [0, samples).
func (g *Generator) TimeAxis(samples int) []float64 {
	if samples <= 0 {
		return nil
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}
	return out
}

func (g *Generator) oscillate(freqHz, amplitude float64, samples int, fn func(float64) float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("oscillator samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("oscillator sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * fn(step*float64(i))
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
