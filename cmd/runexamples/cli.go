package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cwbudde/dsp-figures/internal/runner"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	cfg       runner.Config
	logLevel  string
	logFormat string
}

// parseArgs builds the run configuration. Precedence, lowest first:
// defaults, the -config file, flags given on the command line, the DIR
// argument. It reports help=true when -h was requested.
func parseArgs(args []string, output io.Writer) (opts options, help bool, err error) {
	fs := flag.NewFlagSet("runexamples", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `Usage: runexamples [flags] [DIR]

Runs every example file in DIR whose name starts with -prefix and ends with
-ext, in name order, and stops at the first failure.

Flags:
`)
		fs.PrintDefaults()
	}

	def := runner.DefaultConfig()
	dir := fs.String("dir", "", "directory holding the examples")
	ext := fs.String("ext", def.Extension, "file extension of examples")
	prefix := fs.String("prefix", def.Prefix, "file name prefix of examples")
	skip := fs.Int("skip", def.Skip, "number of leading examples to list without running")
	command := fs.String("cmd", strings.Join(def.Command, " "), "command used to run one example; the file name is appended")
	outDir := fs.String("out", "", "figure output directory, relative to DIR, exported as "+runner.OutDirEnv)
	configPath := fs.String("config", "", "YAML configuration file; a relative dir in it is resolved against the file")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, true, nil
		}
		return options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 1 {
		return options{}, false, &ExitError{Code: 2, Message: "at most one DIR argument is allowed"}
	}

	cfg := def
	if *configPath != "" {
		cfg, err = runner.LoadConfig(*configPath, cfg)
		if err != nil {
			return options{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "ext":
			cfg.Extension = *ext
		case "prefix":
			cfg.Prefix = *prefix
		case "skip":
			cfg.Skip = *skip
		case "cmd":
			cfg.Command = strings.Fields(*command)
		case "out":
			cfg.OutputDir = *outDir
		}
	})
	if fs.NArg() == 1 {
		cfg.Dir = fs.Arg(0)
	}

	opts = options{
		cfg:       cfg,
		logLevel:  strings.ToLower(*logLevel),
		logFormat: strings.ToLower(*logFormat),
	}
	if opts.logFormat != "text" && opts.logFormat != "json" {
		return options{}, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return options{}, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if err := cfg.Validate(); err != nil {
		return options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return opts, false, nil
}

func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// run parses args and executes the examples. Progress lines go to stdout,
// help text and logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, help, err := parseArgs(args, stderr)
	if err != nil || help {
		return err
	}

	logger := newLogger(opts.logLevel, opts.logFormat, stderr)
	r, err := runner.New(opts.cfg, runner.WithOutput(stdout), runner.WithLogger(logger))
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	sum, err := r.Run(ctx)
	logger.Info("run complete", "dir", r.BaseDir(), "total", sum.Total,
		"executed", sum.Executed, "skipped", sum.Skipped, "ok", err == nil)
	if err == nil {
		return nil
	}

	var execErr *runner.ExecError
	if errors.As(err, &execErr) {
		code := execErr.ExitCode
		if code <= 0 {
			code = 1
		}
		return &ExitError{Code: code, Message: err.Error()}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}
