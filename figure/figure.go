package figure

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// OutDirEnv names the environment variable read by OutputPath. It must match
// the variable the example runner exports.
const OutDirEnv = "FIGURE_OUT_DIR"

var (
	// ErrGrid is returned for figures with fewer than one row or column.
	ErrGrid = errors.New("figure: rows and cols must be >= 1")
	// ErrSeriesLength is recorded when x and y of a series differ in length.
	ErrSeriesLength = errors.New("figure: x and y lengths differ")
	// ErrLimits is recorded for empty or inverted axis ranges.
	ErrLimits = errors.New("figure: axis limits must satisfy min < max")
	// ErrFormat is returned for file names without a .jpg, .jpeg or .png extension.
	ErrFormat = errors.New("figure: unsupported image format")
)

// Format is a raster image encoding.
type Format int

const (
	JPEG Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".png":
		return PNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// OutputPath resolves name against $FIGURE_OUT_DIR, or returns it unchanged
// when the variable is unset or empty.
func OutputPath(name string) string {
	if dir := os.Getenv(OutDirEnv); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// Figure is a grid of panels rendered onto one raster image.
type Figure struct {
	cfg    config
	rows   int
	cols   int
	panels []*Panel
}

// New creates an empty rows x cols figure.
func New(rows, cols int, opts ...Option) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGrid, rows, cols)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	panels := make([]*Panel, rows*cols)
	for i := range panels {
		panels[i] = &Panel{}
	}
	return &Figure{cfg: cfg, rows: rows, cols: cols, panels: panels}, nil
}

// Rows returns the number of panel rows.
func (f *Figure) Rows() int { return f.rows }

// Cols returns the number of panel columns.
func (f *Figure) Cols() int { return f.cols }

// At returns the panel at the zero-based row and column. It panics when
// the cell is outside the grid.
func (f *Figure) At(row, col int) *Panel {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		panic(fmt.Sprintf("figure: panel (%d, %d) outside %dx%d grid", row, col, f.rows, f.cols))
	}
	return f.panels[row*f.cols+col]
}

// Err returns the first error recorded by any panel.
func (f *Figure) Err() error {
	for _, p := range f.panels {
		if err := p.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Render draws all panels and returns the raster image.
func (f *Figure) Render() (image.Image, error) {
	if err := f.Err(); err != nil {
		return nil, err
	}

	grid := make([][]*plot.Plot, f.rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, f.cols)
		for c := range grid[r] {
			pl, err := f.At(r, c).build(f.cfg.fontSize)
			if err != nil {
				return nil, err
			}
			grid[r][c] = pl
		}
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(f.cfg.width, f.cfg.height),
		vgimg.UseDPI(f.cfg.dpi),
	)
	pad := vg.Points(4)
	tiles := draw.Tiles{
		Rows:      f.rows,
		Cols:      f.cols,
		PadX:      2 * pad,
		PadY:      2 * pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	cells := plot.Align(grid, tiles, draw.New(canvas))
	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(cells[r][c])
		}
	}
	return canvas.Image(), nil
}

// Encode renders the figure and writes it to w.
func (f *Figure) Encode(w io.Writer, format Format) error {
	img, err := f.Render()
	if err != nil {
		return err
	}

	switch format {
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: f.cfg.quality})
	case PNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("figure: encode %v: %w", format, err)
	}
	return nil
}

// Save renders the figure to path, creating missing parent directories.
// The encoding follows the file extension.
func (f *Figure) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("figure: create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("figure: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := f.Encode(bw, format); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("figure: write %s: %w", path, err)
	}

	f.cfg.logger.Info("image saved", "path", path, "format", format.String())
	return nil
}
