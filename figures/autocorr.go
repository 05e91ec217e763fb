package figures

import (
	"image/color"

	"github.com/cwbudde/dsp-figures/dsp/conv"
	"github.com/cwbudde/dsp-figures/dsp/signal"
	"github.com/cwbudde/dsp-figures/figure"
)

const pulseLength = 20

// PulseSignal returns 20 samples with ones at [7, 10) and [14, 17).
func PulseSignal() ([]float64, error) {
	return signal.Pulses(pulseLength,
		signal.Pulse{Start: 7, End: 10},
		signal.Pulse{Start: 14, End: 17},
	)
}

// AutoCorrelationData is a full autocorrelation against shift.
type AutoCorrelationData struct {
	Signal []float64
	// Shift runs from -(N-1) to N-1.
	Shift []float64
	Corr  []float64
}

// AutoCorrelation correlates PulseSignal with itself over all shifts.
func AutoCorrelation() (AutoCorrelationData, error) {
	x, err := PulseSignal()
	if err != nil {
		return AutoCorrelationData{}, err
	}
	corr, err := conv.AutoCorrelate(x)
	if err != nil {
		return AutoCorrelationData{}, err
	}

	lags := conv.Lags(len(x), len(x))
	shift := make([]float64, len(lags))
	for i, l := range lags {
		shift[i] = float64(l)
	}
	return AutoCorrelationData{Signal: x, Shift: shift, Corr: corr}, nil
}

// PulseSignalFigure plots the pulse signal over a dotted zero line.
func PulseSignalFigure(opts ...figure.Option) (*figure.Figure, error) {
	x, err := PulseSignal()
	if err != nil {
		return nil, err
	}

	fig, err := figure.New(1, 1, opts...)
	if err != nil {
		return nil, err
	}
	p := fig.At(0, 0)
	p.LinePoints(indexAxis(len(x)), x)
	p.HLine(0, 0, float64(len(x)-1), figure.Dash(figure.Dotted), figure.Color(color.Black))
	p.XLim(-0.5, float64(len(x))-0.5)
	p.XTicks(signal.Range(0, float64(len(x)), 2)...)
	return fig, nil
}

// AutoCorrelationFigure plots the autocorrelation against shift.
func AutoCorrelationFigure(opts ...figure.Option) (*figure.Figure, error) {
	data, err := AutoCorrelation()
	if err != nil {
		return nil, err
	}

	opts = append([]figure.Option{figure.WithFontSize(14)}, opts...)
	fig, err := figure.New(1, 1, opts...)
	if err != nil {
		return nil, err
	}
	p := fig.At(0, 0)
	p.Line(data.Shift, data.Corr)
	p.XLabel("Shift")
	p.YLabel("Auto-Correlation")
	p.XLim(data.Shift[0], data.Shift[len(data.Shift)-1])
	return fig, nil
}
