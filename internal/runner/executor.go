package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs one example with dir as its working directory.
type Executor interface {
	Execute(ctx context.Context, dir string, ex Example) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, dir string, ex Example) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, dir string, ex Example) error {
	return f(ctx, dir, ex)
}

// ExecError reports an example that exited with a non-zero status.
type ExecError struct {
	Example Example
	// ExitCode is the process exit status, or -1 when it was killed by a signal.
	ExitCode int
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("runner: %s exited with code %d", e.Example.Name, e.ExitCode)
}

func (e *ExecError) Unwrap() error { return e.Err }

// ProcessExecutor runs each example as a child process: Command followed
// by the example file name.
type ProcessExecutor struct {
	Command []string
	// Env is appended to the inherited environment.
	Env []string
	// Stdout and Stderr default to the runner process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Execute starts the example and waits for it. When ctx ends first the
// whole process group is killed and ctx.Err() is returned.
func (p *ProcessExecutor) Execute(ctx context.Context, dir string, ex Example) error {
	if len(p.Command) == 0 || p.Command[0] == "" {
		return ErrNoCommand
	}

	args := append(append([]string(nil), p.Command[1:]...), ex.Name)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), p.Env...)
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	killProcessGroup(cmd)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExecError{Example: ex, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("runner: run %s: %w", ex.Name, err)
}
