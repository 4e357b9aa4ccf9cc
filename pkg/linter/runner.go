package linter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// Command is an external command to execute.
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Timeout time.Duration
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output is the result of a command that ran to completion.
// A non-zero ExitCode isn't an error by itself because flake8 exits with 1
// when it finds issues.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(ctx context.Context, cmd *Command) (*Output, error)
}

const waitDelay = 3 * time.Second

// ExecRunner is a CommandRunner backed by os/exec.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and waits for it.
// It returns an error only if the process couldn't be started, timed out,
// or was cancelled.
func (r *ExecRunner) Run(ctx context.Context, cmd *Command) (*Output, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec
	c.Dir = cmd.Dir
	// flake8 forks workers which inherit the output pipes.
	// Kill the whole process group and stop waiting for the pipes shortly after.
	setProcessGroup(c)
	c.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, &LinterError{Command: cmd.Name, Stderr: out.Stderr, Err: fmt.Errorf("%w after %s", ErrLinterTimeout, cmd.Timeout)}
	}
	if ctx.Err() != nil {
		return out, fmt.Errorf("run %s: %w", cmd.Name, ctx.Err())
	}
	if err == nil {
		return out, nil
	}
	exitErr := &exec.ExitError{}
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return out, &LinterError{Command: cmd.Name, Err: ErrLinterNotFound}
	}
	return out, &LinterError{Command: cmd.Name, Stderr: out.Stderr, Err: fmt.Errorf("%w: %w", ErrLinterFailed, err)}
}
