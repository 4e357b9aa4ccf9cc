package linter

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const installTimeout = 5 * time.Minute

// Installer makes sure the linter can be executed.
type Installer interface {
	EnsureInstalled(ctx context.Context, logE *logrus.Entry) error
}

// CommandInstaller installs the linter by running a command such as
// `pip install --user flake8` if the linter isn't found in PATH.
// The check and the installation happen at most once per CommandInstaller.
type CommandInstaller struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
	command  string
	install  []string
	once     sync.Once
	err      error
}

// NewInstaller returns a CommandInstaller.
// If install is empty, the linter is never installed and a missing linter is
// reported as ErrLinterNotFound.
func NewInstaller(runner CommandRunner, command string, install []string) *CommandInstaller {
	return &CommandInstaller{
		runner:   runner,
		lookPath: exec.LookPath,
		command:  command,
		install:  install,
	}
}

func (i *CommandInstaller) EnsureInstalled(ctx context.Context, logE *logrus.Entry) error {
	i.once.Do(func() {
		i.err = i.ensureInstalled(ctx, logE)
	})
	return i.err
}

func (i *CommandInstaller) ensureInstalled(ctx context.Context, logE *logrus.Entry) error {
	if _, err := i.lookPath(i.command); err == nil {
		return nil
	}
	if len(i.install) == 0 {
		return &LinterError{Command: i.command, Err: ErrLinterNotFound}
	}
	cmd := &Command{
		Name:    i.install[0],
		Args:    i.install[1:],
		Timeout: installTimeout,
	}
	logE.WithField("install_command", cmd.String()).Info("installing the linter")
	out, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("install %s: %w", i.command, err)
	}
	if out.ExitCode != 0 {
		return &LinterError{
			Command: cmd.Name,
			Stderr:  out.Stderr,
			Err:     fmt.Errorf("%w: install command exited with %d", ErrLinterFailed, out.ExitCode),
		}
	}
	return nil
}
