package figures

import (
	"github.com/cwbudde/dsp-figures/dsp/filter/fir"
	"github.com/cwbudde/dsp-figures/dsp/filter/median"
	"github.com/cwbudde/dsp-figures/dsp/signal"
	"github.com/cwbudde/dsp-figures/figure"
)

const (
	outlierLength = 20
	outlierStep   = 10
	outlierValue  = 3
	smoothKernel  = 3
)

// MedianFilterData compares linear and median smoothing of a step.
type MedianFilterData struct {
	Index []float64
	Raw   []float64
	// Average is the 3-tap moving average advanced by one sample, so it
	// is centred on the input and has one sample less.
	Average []float64
	Median  []float64
}

// MedianFilter builds a unit step at n=10 with outliers of 3 at n=5 and
// n=15, then smooths it with a 3-tap moving average and a 3-tap median.
func MedianFilter() (MedianFilterData, error) {
	x, err := signal.Step(outlierLength, outlierStep, 1)
	if err != nil {
		return MedianFilterData{}, err
	}
	if err := signal.SetSpikes(x, outlierValue, 5, 15); err != nil {
		return MedianFilterData{}, err
	}

	med, err := median.Filter(x, smoothKernel)
	if err != nil {
		return MedianFilterData{}, err
	}

	taps, err := fir.MovingAverage(smoothKernel)
	if err != nil {
		return MedianFilterData{}, err
	}
	avg, err := fir.Apply(taps, x)
	if err != nil {
		return MedianFilterData{}, err
	}

	return MedianFilterData{
		Index:   indexAxis(len(x)),
		Raw:     x,
		Average: avg[1:],
		Median:  med,
	}, nil
}

// MedianFilterFigure plots the raw data with both smoothed versions.
func MedianFilterFigure(opts ...figure.Option) (*figure.Figure, error) {
	data, err := MedianFilter()
	if err != nil {
		return nil, err
	}

	fig, err := figure.New(1, 1, opts...)
	if err != nil {
		return nil, err
	}
	p := fig.At(0, 0)
	p.Line(data.Index, data.Raw, figure.Label("rawdata"),
		figure.WithMarker(figure.MarkerCircle), figure.Dash(figure.Dotted))
	p.Line(data.Index[:len(data.Average)], data.Average, figure.Label("average"))
	p.Line(data.Index, data.Median, figure.Label("median"))
	p.XLim(0, outlierLength-1)
	p.XTicks(signal.Range(0, outlierLength, 2)...)
	p.Legend()
	return fig, nil
}
