// Package figure renders grids of 2-D line and marker plots to JPEG or PNG
// files.
//
// A [Figure] is a rows x cols grid of [Panel] values. Panels record series
// and axis settings; nothing is drawn until [Figure.Render] or
// [Figure.Save]. Rendering is headless and uses gonum.org/v1/plot with the
// raster vgimg canvas, so figures can be produced on machines without a
// display.
//
// Output file names are resolved with [OutputPath], which honours the
// FIGURE_OUT_DIR environment variable exported by the example runner.
package figure
