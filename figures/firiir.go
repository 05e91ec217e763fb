package figures

import (
	"github.com/cwbudde/dsp-figures/dsp/filter/fir"
	"github.com/cwbudde/dsp-figures/dsp/filter/iir"
	"github.com/cwbudde/dsp-figures/dsp/signal"
	"github.com/cwbudde/dsp-figures/figure"
)

const (
	impulseLength = 20
	impulseAt     = 5
	firTaps       = 5
	iirPole       = 0.5
)

// FIRvsIIRData holds an impulse and its responses.
type FIRvsIIRData struct {
	Time  []float64
	Input []float64
	// FIR is the impulse filtered by a 5-tap moving average.
	FIR []float64
	// IIR is the impulse filtered by y[n] = x[n] + 0.5*y[n-1].
	IIR []float64
}

// FIRvsIIR applies a finite and an infinite impulse response filter to a
// unit impulse at n=5 of a 20-sample signal.
func FIRvsIIR() (FIRvsIIRData, error) {
	x, err := signal.Impulse(impulseLength, impulseAt)
	if err != nil {
		return FIRvsIIRData{}, err
	}

	taps, err := fir.MovingAverage(firTaps)
	if err != nil {
		return FIRvsIIRData{}, err
	}
	afterFIR, err := fir.Apply(taps, x)
	if err != nil {
		return FIRvsIIRData{}, err
	}

	afterIIR, err := iir.LFilter([]float64{1}, []float64{1, -iirPole}, x)
	if err != nil {
		return FIRvsIIRData{}, err
	}

	return FIRvsIIRData{
		Time:  indexAxis(impulseLength),
		Input: x,
		FIR:   afterFIR,
		IIR:   afterIIR,
	}, nil
}

// FIRvsIIRFigure plots the input impulse with both filter outputs.
func FIRvsIIRFigure(opts ...figure.Option) (*figure.Figure, error) {
	data, err := FIRvsIIR()
	if err != nil {
		return nil, err
	}

	fig, err := figure.New(1, 1, opts...)
	if err != nil {
		return nil, err
	}
	p := fig.At(0, 0)
	p.Markers(data.Time, data.Input, figure.Label("input"))
	p.Line(data.Time, data.FIR, figure.Label("FIR-filtered"),
		figure.WithMarker(figure.MarkerCross), figure.LineWidth(2))
	p.Line(data.Time, data.IIR, figure.Label("IIR-filtered"),
		figure.WithMarker(figure.MarkerDot), figure.Dash(figure.Dotted), figure.LineWidth(2))
	p.XLabel("Timesteps")
	p.YLabel("Signal")
	p.Legend()
	p.XLim(0, impulseLength)
	p.XTicks(signal.Range(0, impulseLength, 2)...)
	return fig, nil
}
