package core

import "fmt"

// ProcessorConfig defines the sampling settings shared by signal generators
// and spectrum helpers.
type ProcessorConfig struct {
	// SampleRate in Hz. A rate of 1 makes time axes count samples.
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a unit sample rate, which is what the
// sample-indexed textbook plots use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SamplePeriod returns 1/SampleRate.
func (c ProcessorConfig) SamplePeriod() float64 {
	return 1 / c.SampleRate
}

// SamplesFor returns the number of samples covering duration seconds,
// matching a half-open range [0, duration) with step 1/SampleRate.
func (c ProcessorConfig) SamplesFor(duration float64) (int, error) {
	if duration <= 0 {
		return 0, fmt.Errorf("duration must be > 0: %f", duration)
	}
	n := int(duration*c.SampleRate + 0.5)
	if n <= 0 {
		return 0, fmt.Errorf("duration %f shorter than one sample at %f Hz", duration, c.SampleRate)
	}
	return n, nil
}
