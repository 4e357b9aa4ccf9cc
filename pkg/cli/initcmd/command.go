// Package initcmd implements the 'pep8-review init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pep8-review/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE *logrus.Entry
}

func New(logE *logrus.Entry) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .pep8-review.yaml if it doesn't exist",
		Description: `Create .pep8-review.yaml if it doesn't exist

$ pep8-review init

You can also pass configuration file path.

e.g.

$ pep8-review init .github/pep8-review.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, c.String("log-level"), c.String("log-color")); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = c.String("config")
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(r.logE, configFilePath) //nolint:wrapcheck
}
