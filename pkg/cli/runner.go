// Package cli defines the command line interface of pep8-review.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/count"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/migrate"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/run"
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/token"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	cmd := &cli.Command{
		Name:                  "pep8-review",
		Usage:                 "Run flake8 and report PEP 8 issues for code review. https://github.com/suzuki-shunsuke/pep8-review",
		Version:               versionString(ldFlags),
		Flags:                 flag.GlobalFlagDefs(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(logE, ldFlags.Version),
			count.New(logE, ldFlags.Version),
			initcmd.New(logE),
			migrate.New(logE),
			token.New(logE),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

func versionString(ldFlags *urfave.LDFlags) string {
	if ldFlags.Commit == "" {
		return ldFlags.Version
	}
	return ldFlags.Version + " (" + ldFlags.Commit + ")"
}
