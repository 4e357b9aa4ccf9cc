// Package flag defines command line flags shared by commands.
package flag

import (
	"github.com/urfave/cli/v3"
)

type GlobalFlags struct {
	LogLevel string
	LogColor string
	Config   string
}

// NewGlobalFlags reads the global flags.
func NewGlobalFlags(c *cli.Command) *GlobalFlags {
	return &GlobalFlags{
		LogLevel: c.String("log-level"),
		LogColor: c.String("log-color"),
		Config:   c.String("config"),
	}
}

func GlobalFlagDefs() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level",
			Sources: cli.EnvVars("PEP8_REVIEW_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-color",
			Usage:   "Log color. One of 'auto' (default), 'always', 'never'",
			Value:   "auto",
			Sources: cli.EnvVars("PEP8_REVIEW_LOG_COLOR"),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "configuration file path",
			Sources: cli.EnvVars("PEP8_REVIEW_CONFIG"),
		},
	}
}

// ReportFlagDefs returns flags shared by the run and count commands.
func ReportFlagDefs() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "Issues are reported only if the number of issues is greater than this value",
		},
		&cli.StringFlag{
			Name:  "base-dir",
			Usage: "Directory scanned by flake8",
		},
		&cli.StringFlag{
			Name:  "flake8-config",
			Usage: "flake8 configuration file",
		},
		&cli.BoolFlag{
			Name:  "review",
			Usage: "Post the report to the pull request",
		},
		&cli.StringFlag{
			Name:    "provider",
			Usage:   "Source control provider. If this is 'github', file paths are rendered as links to GitHub",
			Sources: cli.EnvVars("PEP8_REVIEW_PROVIDER"),
		},
		&cli.StringFlag{
			Name:    "repo-owner",
			Usage:   "GitHub repository owner",
			Sources: cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
		},
		&cli.StringFlag{
			Name:  "repo-name",
			Usage: "GitHub repository name",
		},
		&cli.StringFlag{
			Name:  "sha",
			Usage: "Commit SHA to be reviewed",
		},
		&cli.IntFlag{
			Name:  "pr",
			Usage: "GitHub pull request number",
		},
	}
}
