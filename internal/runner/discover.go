package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrDirUnreadable is returned when the example directory cannot be listed.
var ErrDirUnreadable = errors.New("runner: example directory unreadable")

// Example is one discovered example file.
type Example struct {
	// Seq is the 1-based position in discovery order.
	Seq int
	// Name is the file name without directory.
	Name string
	// Path is Name joined to the listed directory.
	Path string
}

// Discover lists dir and returns the files whose names end with ext and
// start with prefix, ordered by name. Only regular files are returned;
// symlinks count when they resolve to one.
func Discover(dir, ext, prefix string) ([]Example, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirUnreadable, err)
	}

	// os.ReadDir returns entries sorted by file name.
	var out []Example
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ext) || !strings.HasPrefix(name, prefix) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isRegular(e, path) {
			continue
		}
		out = append(out, Example{
			Seq:  len(out) + 1,
			Name: name,
			Path: path,
		})
	}
	return out, nil
}

func isRegular(e os.DirEntry, path string) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
