package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-list"}, &stdout, &stderr); err != nil {
		t.Fatalf("run -list: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header, rule and 5 figures:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[2], "fir-vs-iir") || !strings.Contains(lines[2], "FIRvsIIR.jpg") {
		t.Fatalf("unexpected first row %q", lines[2])
	}
}

func TestRenderSelected(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run([]string{"-out", dir, "-dpi", "40", "median-filter", "unknown"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "MedianFilter.jpg")); err != nil {
		t.Fatalf("MedianFilter.jpg missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "FIRvsIIR.jpg")); !os.IsNotExist(err) {
		t.Fatal("unrequested figure was rendered")
	}
	if !strings.Contains(stderr.String(), `warning: unknown figure "unknown"`) {
		t.Fatalf("missing warning in %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "image saved") {
		t.Fatalf("missing save log in %q", stderr.String())
	}
}

func TestNoMatchingFigures(t *testing.T) {
	err := run([]string{"nope"}, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, errNoFigures) {
		t.Fatalf("err = %v, want errNoFigures", err)
	}
	if exitCode(err) != 1 {
		t.Fatalf("exitCode = %d, want 1", exitCode(err))
	}
}

func TestBadFlag(t *testing.T) {
	err := run([]string{"-nope"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || exitCode(err) != 2 {
		t.Fatalf("err = %v, exit %d, want usage error", err, exitCode(err))
	}
}
