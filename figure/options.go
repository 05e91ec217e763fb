package figure

import (
	"log/slog"

	"gonum.org/v1/plot/vg"
)

const (
	defaultWidth    = 6.4
	defaultHeight   = 4.8
	defaultDPI      = 200
	defaultQuality  = 90
	defaultFontSize = 12
)

type config struct {
	width    vg.Length
	height   vg.Length
	dpi      int
	quality  int
	fontSize vg.Length
	logger   *slog.Logger
}

// Option configures a Figure.
type Option func(*config)

func defaultConfig() config {
	return config{
		width:    defaultWidth * vg.Inch,
		height:   defaultHeight * vg.Inch,
		dpi:      defaultDPI,
		quality:  defaultQuality,
		fontSize: vg.Points(defaultFontSize),
	}
}

// WithSize sets the figure size in inches. Non-positive values are ignored.
func WithSize(widthInches, heightInches float64) Option {
	return func(cfg *config) {
		if widthInches > 0 {
			cfg.width = vg.Length(widthInches) * vg.Inch
		}
		if heightInches > 0 {
			cfg.height = vg.Length(heightInches) * vg.Inch
		}
	}
}

// WithDPI sets the raster resolution in dots per inch. Non-positive values
// are ignored.
func WithDPI(dpi int) Option {
	return func(cfg *config) {
		if dpi > 0 {
			cfg.dpi = dpi
		}
	}
}

// WithQuality sets the JPEG quality, clamped to [1, 100].
func WithQuality(quality int) Option {
	return func(cfg *config) {
		cfg.quality = min(max(quality, 1), 100)
	}
}

// WithFontSize sets the point size of titles and axis labels. Tick and
// legend labels are drawn two points smaller.
func WithFontSize(points float64) Option {
	return func(cfg *config) {
		if points > 2 {
			cfg.fontSize = vg.Points(points)
		}
	}
}

// WithLogger sets the logger used to report saved images.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
