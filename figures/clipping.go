package figures

import (
	"github.com/cwbudde/dsp-figures/dsp/core"
	"github.com/cwbudde/dsp-figures/dsp/signal"
	"github.com/cwbudde/dsp-figures/dsp/spectrum"
	"github.com/cwbudde/dsp-figures/dsp/window"
	"github.com/cwbudde/dsp-figures/figure"
)

const (
	clipSampleRate = 100000.0
	clipToneHz     = 1000.0
	clipSamples    = 1000
	clipStart      = 199
	clipEnd        = 400
	clipMaxHz      = 5000.0
)

// Trace is one signal of the clipping figure with its power spectrum.
type Trace struct {
	Label  string
	Signal []float64
	Pxx    []float64
	Freq   []float64
}

// ClippingData holds the three traces of the clipping figure.
type ClippingData struct {
	SampleRate float64
	Time       []float64
	// Traces are the full cosine, the clipped cosine and the clipped cosine
	// tapered by a Hann window, in that order.
	Traces []Trace
}

// ClippingEffect builds a 1 kHz cosine sampled at 100 kHz, a copy cut to
// samples [199, 400), and a copy of the cut multiplied by a 201-point Hann
// window, each with its one-sided power spectrum.
func ClippingEffect() (ClippingData, error) {
	gen := signal.NewGenerator(core.WithSampleRate(clipSampleRate))
	x, err := gen.Cosine(clipToneHz, 1, clipSamples)
	if err != nil {
		return ClippingData{}, err
	}

	clipped := append([]float64(nil), x...)
	if err := signal.ZeroRange(clipped, 0, clipStart); err != nil {
		return ClippingData{}, err
	}
	if err := signal.ZeroRange(clipped, clipEnd, len(clipped)); err != nil {
		return ClippingData{}, err
	}

	windowed := append([]float64(nil), clipped...)
	hann, err := window.Hann(clipEnd - clipStart)
	if err != nil {
		return ClippingData{}, err
	}
	if err := window.ApplySegment(windowed, clipStart, hann); err != nil {
		return ClippingData{}, err
	}

	data := ClippingData{
		SampleRate: clipSampleRate,
		Time:       gen.TimeAxis(clipSamples),
	}
	for _, tr := range []Trace{
		{Label: "Cosine wave", Signal: x},
		{Label: "Clipped", Signal: clipped},
		{Label: "Clipped & Windowed", Signal: windowed},
	} {
		tr.Pxx, tr.Freq, err = spectrum.PowerSpectrum(tr.Signal, clipSampleRate)
		if err != nil {
			return ClippingData{}, err
		}
		data.Traces = append(data.Traces, tr)
	}
	return data, nil
}

// ClippingFigure lays out a 3x2 grid: time signals on the left, power
// spectra between 1 Hz and 5 kHz on the right.
func ClippingFigure(opts ...figure.Option) (*figure.Figure, error) {
	data, err := ClippingEffect()
	if err != nil {
		return nil, err
	}

	opts = append([]figure.Option{figure.WithSize(8, 5), figure.WithFontSize(9)}, opts...)
	fig, err := figure.New(len(data.Traces), 2, opts...)
	if err != nil {
		return nil, err
	}

	last := len(data.Traces) - 1
	for row, tr := range data.Traces {
		sig, pow := fig.At(row, 0), fig.At(row, 1)
		sig.Line(data.Time, tr.Signal, figure.Label(tr.Label))

		// One bin past the limit keeps the line running to the panel edge.
		pxx, freq := spectrum.Band(tr.Pxx, tr.Freq, 0, clipMaxHz+data.SampleRate/clipSamples)
		pow.Line(freq, pxx, figure.WithMarker(figure.MarkerDot), figure.LineWidth(0.5))
		pow.XLim(1, clipMaxHz)

		if row > 0 {
			sig.Legend()
		}
		if row < last {
			sig.HideXTickLabels()
			pow.HideXTickLabels()
		}
	}

	fig.At(0, 0).Title("Signal")
	fig.At(0, 1).Title("Power")
	fig.At(last, 0).XLabel("Time (s)")
	fig.At(last, 1).XLabel("Frequency (Hz)")
	return fig, nil
}
