// Command mkfigures renders the textbook figures in-process.
//
// Usage:
//
//	mkfigures [flags] [figure-name ...]
//
// Without arguments it renders every registered figure.
//
// Examples:
//
//	mkfigures fir-vs-iir
//	mkfigures -out images -dpi 100 clipping-effect median-filter
//	mkfigures -all
//	mkfigures -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/dsp-figures/figure"
	"github.com/cwbudde/dsp-figures/figures"
)

var errNoFigures = errors.New("no matching figures")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

type usageError struct{ error }

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mkfigures", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", ".", "output directory")
	dpi := fs.Int("dpi", 200, "raster resolution in dots per inch")
	quality := fs.Int("quality", 90, "JPEG quality, 1 to 100")
	all := fs.Bool("all", false, "render all figures")
	list := fs.Bool("list", false, "list available figures")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mkfigures [flags] [figure-name ...]\n\n")
		fmt.Fprintf(stderr, "Renders the textbook figures to image files.\n")
		fmt.Fprintf(stderr, "Without arguments or with -all, renders every figure.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mkfigures fir-vs-iir median-filter\n")
		fmt.Fprintf(stderr, "  mkfigures -out images -dpi 100\n")
		fmt.Fprintf(stderr, "  mkfigures -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError{err}
	}

	if *list {
		return printList(stdout)
	}

	names := fs.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range figures.All() {
			names = append(names, e.Name)
		}
	}

	entries := resolveEntries(names, stderr)
	if len(entries) == 0 {
		return errNoFigures
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	opts := []figure.Option{
		figure.WithDPI(*dpi),
		figure.WithQuality(*quality),
		figure.WithLogger(logger),
	}
	for _, e := range entries {
		if _, err := e.SaveIn(*out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tFile\tDescription\n")
	fmt.Fprintf(tw, "----\t----\t-----------\n")
	for _, e := range figures.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.File, e.Summary)
	}
	return tw.Flush()
}

func resolveEntries(names []string, stderr io.Writer) []figures.Entry {
	var result []figures.Entry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := figures.Lookup(name)
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown figure %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}
