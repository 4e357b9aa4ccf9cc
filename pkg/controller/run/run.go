package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pep8-review/pkg/linter"
	"github.com/suzuki-shunsuke/pep8-review/pkg/report"
)

// ErrReviewFailed is returned when a failure was reported.
// The failure itself has already been output, so callers only need to exit with a non-zero code.
var ErrReviewFailed = errors.New("review failed")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	c.checkVersion(ctx, logE)

	var findings []*report.Finding
	var err error
	switch c.param.Mode {
	case ModeCount:
		_, err = c.builder.CountErrors(ctx, logE, c.param.ShouldFail || c.cfg.Count.Fail)
	default:
		findings, err = c.builder.Lint(ctx, logE)
	}
	if err != nil {
		logerr.WithError(logE, err).Debug("the linter didn't produce a report")
	}

	if c.flusher != nil {
		if err := c.flusher.Flush(ctx, logE); err != nil {
			logerr.WithError(logE, err).Error("post the report to the pull request")
		}
	}

	if c.param.Format == FormatSARIF && c.param.Mode == ModeLint && err == nil {
		if err := c.outputSARIF(findings); err != nil {
			return err
		}
	}

	if c.sink.Failed() {
		return ErrReviewFailed
	}
	return nil
}

// checkVersion warns if the linter is older than min_version.
func (c *Controller) checkVersion(ctx context.Context, logE *logrus.Entry) {
	minVersion := c.cfg.Linter.MinVersion
	if minVersion == "" || c.versioner == nil {
		return
	}
	v, err := c.versioner.Version(ctx, logE)
	if err != nil {
		logerr.WithError(logE, err).Warn("get the version of the linter")
		return
	}
	older, err := linter.CheckVersion(v, minVersion)
	if err != nil {
		logerr.WithError(logE, err).Warn("check the version of the linter")
		return
	}
	if older {
		c.sink.Warn(fmt.Sprintf("%s %s is older than min_version %s", c.cfg.Linter.Command, v.Original(), minVersion))
	}
}
