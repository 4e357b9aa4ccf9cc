// Package run implements the 'pep8-review run' command.
package run

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/flag"
	ctrl "github.com/suzuki-shunsuke/pep8-review/pkg/controller/run"
	"github.com/suzuki-shunsuke/pep8-review/pkg/di"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE    *logrus.Entry
	version string
}

func New(logE *logrus.Entry, version string) *cli.Command {
	r := &runner{
		logE:    logE,
		version: version,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run flake8 and report issues as a markdown table",
		Description: `Run flake8 over the base directory and report issues as a markdown table
if the number of issues is greater than the threshold.

$ pep8-review run

If --review is set, the report is also posted to the pull request.

$ pep8-review run --review

If --format sarif is set, issues are output to stdout as SARIF.

$ pep8-review run --format sarif > pep8.sarif
`,
		Action: r.action,
		Flags: append(flag.ReportFlagDefs(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format of issues. One of 'markdown' (default), 'sarif'",
			},
		),
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	flags := NewFlags(c, ctrl.ModeLint)
	flags.Format = c.String("format")
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, secrets, &di.Param{ //nolint:wrapcheck
		Version: r.version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
}

// NewFlags reads the flags shared by the run and count commands and the environment variables.
func NewFlags(c *cli.Command, mode ctrl.Mode) *di.Flags {
	flags := &di.Flags{
		GlobalFlags:  flag.NewGlobalFlags(c),
		Mode:         mode,
		Threshold:    c.Int("threshold"),
		ThresholdSet: c.IsSet("threshold"),
		BaseDir:      c.String("base-dir"),
		Flake8Config: c.String("flake8-config"),
		Review:       c.Bool("review"),
		Provider:     c.String("provider"),
		RepoOwner:    c.String("repo-owner"),
		RepoName:     c.String("repo-name"),
		SHA:          c.String("sha"),
		PR:           c.Int("pr"),
	}
	di.SetEnv(flags, os.Getenv)
	return flags
}
