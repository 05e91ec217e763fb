package figure

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type seriesKind int

const (
	kindLine seriesKind = iota
	kindMarkers
	kindLinePoints
)

type series struct {
	kind  seriesKind
	xys   plotter.XYs
	style style
}

type limits struct {
	min, max float64
	set      bool
}

// Panel is one cell of a Figure. Methods record settings; the panel is
// drawn when the owning Figure renders.
type Panel struct {
	series    []series
	title     string
	xLabel    string
	yLabel    string
	xLim      limits
	yLim      limits
	xTicks    []float64
	hideXTick bool
	legend    bool
	err       error
}

// Line adds a connected line through the points (x[i], y[i]).
func (p *Panel) Line(x, y []float64, opts ...SeriesOption) {
	p.add(kindLine, x, y, MarkerNone, opts)
}

// Markers adds unconnected points. The default glyph is a circle.
func (p *Panel) Markers(x, y []float64, opts ...SeriesOption) {
	p.add(kindMarkers, x, y, MarkerCircle, opts)
}

// LinePoints adds a line with a glyph at every point.
func (p *Panel) LinePoints(x, y []float64, opts ...SeriesOption) {
	p.add(kindLinePoints, x, y, MarkerCircle, opts)
}

// HLine adds a horizontal line at y spanning [xmin, xmax].
func (p *Panel) HLine(y, xmin, xmax float64, opts ...SeriesOption) {
	p.add(kindLine, []float64{xmin, xmax}, []float64{y, y}, MarkerNone, opts)
}

// Title sets the panel title.
func (p *Panel) Title(s string) { p.title = s }

// XLabel sets the x-axis label.
func (p *Panel) XLabel(s string) { p.xLabel = s }

// YLabel sets the y-axis label.
func (p *Panel) YLabel(s string) { p.yLabel = s }

// XLim fixes the x-axis range.
func (p *Panel) XLim(lo, hi float64) { p.xLim = p.checkLimits("x", lo, hi) }

// YLim fixes the y-axis range.
func (p *Panel) YLim(lo, hi float64) { p.yLim = p.checkLimits("y", lo, hi) }

// XTicks places x-axis ticks at the given values.
func (p *Panel) XTicks(values ...float64) {
	p.xTicks = append([]float64(nil), values...)
}

// HideXTickLabels keeps the x-axis tick marks but draws no labels.
func (p *Panel) HideXTickLabels() { p.hideXTick = true }

// Legend enables the legend for all labelled series.
func (p *Panel) Legend() { p.legend = true }

// Err returns the first error recorded by the panel.
func (p *Panel) Err() error { return p.err }

func (p *Panel) add(kind seriesKind, x, y []float64, marker Marker, opts []SeriesOption) {
	if len(x) != len(y) {
		p.fail(fmt.Errorf("%w: x has %d values, y has %d", ErrSeriesLength, len(x), len(y)))
		return
	}

	st := style{
		color:  palette[len(p.series)%len(palette)],
		width:  1.5,
		marker: marker,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&st)
		}
	}
	if kind == kindLine && st.marker != MarkerNone {
		kind = kindLinePoints
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	p.series = append(p.series, series{kind: kind, xys: xys, style: st})
}

func (p *Panel) checkLimits(axis string, lo, hi float64) limits {
	if lo >= hi {
		p.fail(fmt.Errorf("%w: %s range [%g, %g]", ErrLimits, axis, lo, hi))
		return limits{}
	}
	return limits{min: lo, max: hi, set: true}
}

func (p *Panel) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// build creates a fresh gonum plot from the recorded settings.
func (p *Panel) build(fontSize vg.Length) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.title
	pl.X.Label.Text = p.xLabel
	pl.Y.Label.Text = p.yLabel

	small := fontSize - vg.Points(2)
	pl.Title.TextStyle.Font.Size = fontSize
	pl.X.Label.TextStyle.Font.Size = fontSize
	pl.Y.Label.TextStyle.Font.Size = fontSize
	pl.X.Tick.Label.Font.Size = small
	pl.Y.Tick.Label.Font.Size = small
	pl.Legend.TextStyle.Font.Size = small
	pl.Legend.Top = true

	for _, s := range p.series {
		thumbs, err := s.plotters(pl)
		if err != nil {
			return nil, err
		}
		if p.legend && s.style.label != "" {
			pl.Legend.Add(s.style.label, thumbs...)
		}
	}

	if p.xLim.set {
		pl.X.Min, pl.X.Max = p.xLim.min, p.xLim.max
	}
	if p.yLim.set {
		pl.Y.Min, pl.Y.Max = p.yLim.min, p.yLim.max
	}

	var ticker plot.Ticker = plot.DefaultTicks{}
	if len(p.xTicks) > 0 {
		ticks := make([]plot.Tick, len(p.xTicks))
		for i, v := range p.xTicks {
			ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
		}
		ticker = plot.ConstantTicks(ticks)
	}
	if p.hideXTick {
		ticker = blankLabels{ticker}
	}
	pl.X.Tick.Marker = ticker
	return pl, nil
}

// plotters adds the series to pl and returns its legend thumbnails.
func (s series) plotters(pl *plot.Plot) ([]plot.Thumbnailer, error) {
	var thumbs []plot.Thumbnailer

	if s.kind == kindLine || s.kind == kindLinePoints {
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return nil, fmt.Errorf("figure: line %q: %w", s.style.label, err)
		}
		line.LineStyle.Color = s.style.color
		line.LineStyle.Width = vg.Points(s.style.width)
		line.LineStyle.Dashes = s.style.dash.pattern()
		pl.Add(line)
		thumbs = append(thumbs, line)
	}

	if s.kind == kindMarkers || s.kind == kindLinePoints {
		scatter, err := plotter.NewScatter(s.xys)
		if err != nil {
			return nil, fmt.Errorf("figure: markers %q: %w", s.style.label, err)
		}
		shape, radius := s.style.marker.glyph()
		scatter.GlyphStyle.Shape = shape
		scatter.GlyphStyle.Radius = radius
		scatter.GlyphStyle.Color = s.style.color
		pl.Add(scatter)
		thumbs = append(thumbs, scatter)
	}
	return thumbs, nil
}

// blankLabels keeps the tick positions of the wrapped ticker and drops
// their labels.
type blankLabels struct {
	plot.Ticker
}

func (b blankLabels) Ticks(lo, hi float64) []plot.Tick {
	ticks := b.Ticker.Ticks(lo, hi)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
