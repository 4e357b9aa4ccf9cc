package linter

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
)

const versionTimeout = 30 * time.Second

// Invoker runs the linter according to the configuration.
// The configuration is read on every run, so changes made by the caller
// between runs are honored.
type Invoker struct {
	runner    CommandRunner
	installer Installer
	cfg       *config.Config
}

func New(runner CommandRunner, installer Installer, cfg *config.Config) *Invoker {
	return &Invoker{
		runner:    runner,
		installer: installer,
		cfg:       cfg,
	}
}

// Run executes the linter and returns its stdout split into lines.
func (iv *Invoker) Run(ctx context.Context, logE *logrus.Entry, mode Mode) ([]string, error) {
	cmd := &Command{
		Name:    iv.command(),
		Args:    Args(iv.cfg, mode),
		Timeout: iv.cfg.TimeoutDuration(),
	}
	ctx, span := startRunSpan(ctx, cmd.Name, mode)
	defer span.End()
	start := time.Now()

	lines, err := iv.run(ctx, logE, cmd)
	recordRun(ctx, span, mode, time.Since(start), len(lines), err)
	return lines, err
}

func (iv *Invoker) run(ctx context.Context, logE *logrus.Entry, cmd *Command) ([]string, error) {
	iv.ensureInstalled(ctx, logE)

	logE.WithFields(logrus.Fields{
		"command": cmd.String(),
		"timeout": cmd.Timeout,
	}).Debug("run the linter")
	out, err := iv.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if out.ExitCode != 0 && out.Stdout == "" {
		return nil, &LinterError{
			Command: cmd.Name,
			Stderr:  out.Stderr,
			Err:     fmt.Errorf("%w: exit status %d", ErrLinterFailed, out.ExitCode),
		}
	}
	return SplitLines(out.Stdout), nil
}

// Version returns the version of the linter.
func (iv *Invoker) Version(ctx context.Context, logE *logrus.Entry) (*version.Version, error) {
	iv.ensureInstalled(ctx, logE)
	cmd := &Command{
		Name:    iv.command(),
		Args:    []string{"--version"},
		Timeout: versionTimeout,
	}
	out, err := iv.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if out.ExitCode != 0 {
		return nil, &LinterError{
			Command: cmd.Name,
			Stderr:  out.Stderr,
			Err:     fmt.Errorf("%w: exit status %d", ErrLinterFailed, out.ExitCode),
		}
	}
	return ParseVersion(out.Stdout)
}

func (iv *Invoker) ensureInstalled(ctx context.Context, logE *logrus.Entry) {
	if iv.installer == nil {
		return
	}
	if err := iv.installer.EnsureInstalled(ctx, logE); err != nil {
		logerr.WithError(logE, err).Warn("install the linter")
	}
}

func (iv *Invoker) command() string {
	if iv.cfg.Linter.Command == "" {
		return config.DefaultCommand
	}
	return iv.cfg.Linter.Command
}
