// Package di wires the dependencies of the run and count commands.
package di

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
	"github.com/suzuki-shunsuke/pep8-review/pkg/controller/run"
	"github.com/suzuki-shunsuke/pep8-review/pkg/github"
	"github.com/suzuki-shunsuke/pep8-review/pkg/linter"
	"github.com/suzuki-shunsuke/pep8-review/pkg/report"
	"github.com/suzuki-shunsuke/pep8-review/pkg/review"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
)

type Param struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run runs a review session.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets, param *Param) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	logColor := flags.LogColor
	if logColor == "" {
		logColor = "auto"
	}
	if err := log.Set(logE, flags.LogLevel, logColor); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	if err := validateFormat(flags.Format); err != nil {
		return err
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	if err := overrideConfig(cfg, flags); err != nil {
		return err
	}

	rv := setupReview(fs, logE, flags)

	stdout := param.Stdout
	if flags.Format == run.FormatSARIF {
		stdout = param.Stderr
	}
	console := review.NewConsole(stdout, param.Stderr)
	var sink review.Reporter = console
	var flusher run.Flusher
	if flags.Review {
		if rv.Valid() {
			gh, err := github.New(ctx, logE, &github.ParamNew{
				Token:          secrets.GitHubToken,
				KeyringEnabled: flags.KeyringEnabled,
				APIURL:         flags.GitHubAPIURL,
			})
			if err != nil {
				return fmt.Errorf("create a GitHub client: %w", err)
			}
			ghSink := review.NewGitHub(gh.Issues, rv.Target())
			sink = review.NewMulti(console, ghSink)
			flusher = ghSink
		} else {
			logE.Warn("skip posting the report because the pull request is unknown")
		}
	}

	runner := linter.NewExecRunner()
	invoker := linter.New(runner, linter.NewInstaller(runner, cfg.Linter.Command, cfg.Linter.Install), cfg)
	builder := report.NewBuilder(invoker, sink, linkResolver(rv, flags), cfg)

	ctrl := run.New(builder, invoker, sink, flusher, cfg, &run.ParamRun{
		Mode:       flags.Mode,
		ShouldFail: flags.Fail,
		Format:     flags.Format,
		Version:    param.Version,
		Stdout:     param.Stdout,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func validateFormat(format string) error {
	switch format {
	case "", "markdown", run.FormatSARIF:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

// overrideConfig applies command line flags over the configuration file.
func overrideConfig(cfg *config.Config, flags *Flags) error {
	if flags.ThresholdSet {
		cfg.Threshold = flags.Threshold
	}
	if flags.BaseDir != "" {
		cfg.BaseDir = flags.BaseDir
	}
	if flags.Flake8Config != "" {
		cfg.ConfigFile = flags.Flake8Config
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate the configuration: %w", err)
	}
	return nil
}
