package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default selection and execution settings.
const (
	DefaultExtension = ".go"
	DefaultPrefix    = "S"
)

// DefaultCommand runs a single Go file.
var DefaultCommand = []string{"go", "run"}

var (
	// ErrNoDir is returned when no example directory is configured.
	ErrNoDir = errors.New("runner: example directory is required")
	// ErrNegativeSkip is returned for skip counts below zero.
	ErrNegativeSkip = errors.New("runner: skip must be >= 0")
	// ErrNoExtension is returned for an empty extension filter.
	ErrNoExtension = errors.New("runner: extension filter is empty")
	// ErrNoPrefix is returned for an empty prefix filter.
	ErrNoPrefix = errors.New("runner: prefix filter is empty")
	// ErrNoCommand is returned for an empty execution command.
	ErrNoCommand = errors.New("runner: command is empty")
	// ErrConfigFile is returned when a YAML config file cannot be used.
	ErrConfigFile = errors.New("runner: config file")
)

// Config selects and executes examples.
type Config struct {
	// Dir is the directory holding the examples.
	Dir string `yaml:"dir"`
	// Extension keeps only files whose name ends with it.
	Extension string `yaml:"extension"`
	// Prefix keeps only files whose name starts with it.
	Prefix string `yaml:"prefix"`
	// Skip is the number of leading examples that are listed but not run.
	Skip int `yaml:"skip"`
	// Command is the argv prefix for one example; the file name is appended.
	Command []string `yaml:"command"`
	// OutputDir, when set, is exported to examples as FIGURE_OUT_DIR.
	// Relative paths are resolved against Dir.
	OutputDir string `yaml:"output_dir"`
	// Env holds extra variables added to the inherited environment.
	Env map[string]string `yaml:"env"`
}

// DefaultConfig returns the settings used when nothing is configured.
// Dir is left empty.
func DefaultConfig() Config {
	return Config{
		Extension: DefaultExtension,
		Prefix:    DefaultPrefix,
		Command:   append([]string(nil), DefaultCommand...),
	}
}

// Validate reports the first configuration error.
func (c Config) Validate() error {
	switch {
	case c.Skip < 0:
		return fmt.Errorf("%w: %d", ErrNegativeSkip, c.Skip)
	case c.Dir == "":
		return ErrNoDir
	case c.Extension == "":
		return ErrNoExtension
	case c.Prefix == "":
		return ErrNoPrefix
	case len(c.Command) == 0 || c.Command[0] == "":
		return ErrNoCommand
	}
	return nil
}

// LoadConfig reads a YAML file on top of base. Keys missing from the file
// keep their base value; env entries are merged. Unknown keys are errors.
// A relative dir in the file is resolved against the file's directory.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	cfg := base
	cfg.Dir = ""
	cfg.Command = append([]string(nil), base.Command...)
	cfg.Env = maps.Clone(base.Env)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
	}

	switch {
	case cfg.Dir == "":
		cfg.Dir = base.Dir
	case !filepath.IsAbs(cfg.Dir):
		cfg.Dir = filepath.Join(filepath.Dir(path), cfg.Dir)
	}
	return cfg, nil
}
