package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// OutDirEnv is the variable through which examples learn the output directory.
const OutDirEnv = "FIGURE_OUT_DIR"

// Summary counts the outcome of a run.
type Summary struct {
	Total    int
	Executed int
	Skipped  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the default ProcessExecutor.
func WithExecutor(e Executor) Option {
	return func(r *Runner) {
		if e != nil {
			r.exec = e
		}
	}
}

// WithOutput sets the writer for progress lines. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner executes the examples of one directory in order.
type Runner struct {
	cfg    Config
	base   string
	outDir string
	exec   Executor
	out    io.Writer
	logger *slog.Logger
}

// New validates cfg and resolves its directories to absolute paths.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("runner: resolve %s: %w", cfg.Dir, err)
	}

	r := &Runner{
		cfg:    cfg,
		base:   base,
		out:    os.Stdout,
		logger: slog.Default(),
	}
	if cfg.OutputDir != "" {
		r.outDir = cfg.OutputDir
		if !filepath.IsAbs(r.outDir) {
			r.outDir = filepath.Join(base, r.outDir)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.exec == nil {
		r.exec = &ProcessExecutor{Command: cfg.Command, Env: r.Environ()}
	}
	return r, nil
}

// BaseDir returns the absolute example directory.
func (r *Runner) BaseDir() string { return r.base }

// Environ returns the variables added to each example's environment in
// KEY=VALUE form, sorted by key, with FIGURE_OUT_DIR last when set.
func (r *Runner) Environ() []string {
	keys := slices.Sorted(maps.Keys(r.cfg.Env))
	env := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		env = append(env, k+"="+r.cfg.Env[k])
	}
	if r.outDir != "" {
		env = append(env, OutDirEnv+"="+r.outDir)
	}
	return env
}

// Run discovers the examples and executes every one past the skip count.
// A progress line is written for each example before it is considered.
// The first executor error ends the run and is returned as is.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	examples, err := Discover(r.base, r.cfg.Extension, r.cfg.Prefix)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Total: len(examples)}
	r.logger.Debug("examples discovered", "dir", r.base, "count", len(examples), "skip", r.cfg.Skip)

	outReady := false
	for i, ex := range examples {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if _, err := fmt.Fprintf(r.out, "%d/%d: %s\n", ex.Seq, len(examples), ex.Name); err != nil {
			return sum, fmt.Errorf("runner: write progress: %w", err)
		}

		if i < r.cfg.Skip {
			sum.Skipped++
			r.logger.Debug("example skipped", "seq", ex.Seq, "file", ex.Name)
			continue
		}

		if !outReady && r.outDir != "" {
			if err := os.MkdirAll(r.outDir, 0o755); err != nil {
				return sum, fmt.Errorf("runner: create output dir: %w", err)
			}
			outReady = true
		}

		start := time.Now()
		r.logger.Info("example started", "seq", ex.Seq, "file", ex.Name)
		if err := r.exec.Execute(ctx, r.base, ex); err != nil {
			r.logger.Error("example failed", "seq", ex.Seq, "file", ex.Name, "err", err)
			return sum, err
		}
		sum.Executed++
		r.logger.Info("example finished", "seq", ex.Seq, "file", ex.Name, "duration", time.Since(start))
	}
	return sum, nil
}
