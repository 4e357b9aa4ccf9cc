// Package count implements the 'pep8-review count' command.
package count

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/run"
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
		Name:  "count",
		Usage: "Report the number of issues",
		Description: `Report the number of flake8 issues as a warning
if it is greater than the threshold.

$ pep8-review count --threshold 10

If --fail is set, the number of issues is reported as a failure and the command exits with 1.

$ pep8-review count --fail
`,
		Action: r.action,
		Flags: append(flag.ReportFlagDefs(),
			&cli.BoolFlag{
				Name:  "fail",
				Usage: "Report the number of issues as a failure",
			},
		),
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	flags := run.NewFlags(c, ctrl.ModeCount)
	flags.Fail = c.Bool("fail")
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, secrets, &di.Param{ //nolint:wrapcheck
		Version: r.version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
}
