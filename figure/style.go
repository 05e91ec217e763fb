package figure

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Marker selects the glyph drawn at each data point.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerDot
	MarkerCross
	MarkerPlus
	MarkerSquare
	MarkerTriangle
)

func (m Marker) glyph() (draw.GlyphDrawer, vg.Length) {
	switch m {
	case MarkerDot:
		return draw.CircleGlyph{}, vg.Points(1.5)
	case MarkerCross:
		return draw.CrossGlyph{}, vg.Points(3)
	case MarkerPlus:
		return draw.PlusGlyph{}, vg.Points(3)
	case MarkerSquare:
		return draw.SquareGlyph{}, vg.Points(2.5)
	case MarkerTriangle:
		return draw.TriangleGlyph{}, vg.Points(3)
	default:
		return draw.CircleGlyph{}, vg.Points(2.5)
	}
}

// LineDash selects the stroke pattern of a line.
type LineDash int

const (
	Solid LineDash = iota
	Dotted
	Dashed
)

func (d LineDash) pattern() []vg.Length {
	switch d {
	case Dotted:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case Dashed:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	default:
		return nil
	}
}

// palette is the default colour cycle, one colour per series in a panel.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

type style struct {
	label  string
	color  color.Color
	width  float64
	dash   LineDash
	marker Marker
}

// SeriesOption configures one series.
type SeriesOption func(*style)

// Label names the series in the panel legend.
func Label(label string) SeriesOption {
	return func(s *style) { s.label = label }
}

// Color overrides the palette colour.
func Color(c color.Color) SeriesOption {
	return func(s *style) { s.color = c }
}

// LineWidth sets the stroke width in points. Non-positive widths are ignored.
func LineWidth(points float64) SeriesOption {
	return func(s *style) {
		if points > 0 {
			s.width = points
		}
	}
}

// Dash sets the stroke pattern.
func Dash(d LineDash) SeriesOption {
	return func(s *style) { s.dash = d }
}

// WithMarker sets the point glyph.
func WithMarker(m Marker) SeriesOption {
	return func(s *style) { s.marker = m }
}
