// Package report turns flake8 output into a review report.
package report

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
	"github.com/suzuki-shunsuke/pep8-review/pkg/linter"
)

type Builder struct {
	invoker Invoker
	sink    Sink
	links   LinkResolver
	cfg     *config.Config
}

// NewBuilder returns a Builder. links may be nil.
func NewBuilder(invoker Invoker, sink Sink, links LinkResolver, cfg *config.Config) *Builder {
	return &Builder{
		invoker: invoker,
		sink:    sink,
		links:   links,
		cfg:     cfg,
	}
}

// Lint reports findings as a markdown table if the number of findings
// exceeds the threshold. It returns the reported findings.
// If the linter fails or its output can't be parsed, a failure is emitted
// and the error is returned.
func (b *Builder) Lint(ctx context.Context, logE *logrus.Entry) ([]*Finding, error) {
	lines, err := b.invoker.Run(ctx, logE, linter.ModeNormal)
	if err != nil {
		b.sink.Fail("lint failed: " + err.Error())
		return nil, err //nolint:wrapcheck
	}
	logE = logE.WithFields(logrus.Fields{
		"num_of_lines": len(lines),
		"threshold":    b.cfg.Threshold,
	})
	if !Exceeds(len(lines), b.cfg.Threshold) {
		logE.Debug("the number of issues doesn't exceed the threshold")
		return nil, nil
	}
	findings, err := ParseFindings(lines)
	if err != nil {
		b.sink.Fail(b.linterName() + " output could not be parsed: " + err.Error())
		return nil, err
	}
	logE.Info("issues are found")
	b.sink.Markdown(RenderTable(findings, b.links))
	return findings, nil
}

func (b *Builder) linterName() string {
	if b.cfg.Linter.Command == "" {
		return config.DefaultCommand
	}
	return b.cfg.Linter.Command
}

// CountErrors reports the number of issues as a warning, or as a failure if
// shouldFail is true, when it exceeds the threshold.
func (b *Builder) CountErrors(ctx context.Context, logE *logrus.Entry, shouldFail bool) (int, error) {
	lines, err := b.invoker.Run(ctx, logE, linter.ModeCountOnly)
	if err != nil {
		b.sink.Fail("lint failed: " + err.Error())
		return 0, err //nolint:wrapcheck
	}
	count, err := ParseCount(lines)
	if err != nil {
		logerr.WithError(logE, err).Warn("the count of issues is treated as zero")
	}
	logE = logE.WithFields(logrus.Fields{
		"count":     count,
		"threshold": b.cfg.Threshold,
	})
	if !Exceeds(count, b.cfg.Threshold) {
		logE.Debug("the number of issues doesn't exceed the threshold")
		return count, nil
	}
	if shouldFail {
		b.sink.Fail(countMessage(count))
		return count, nil
	}
	b.sink.Warn(countMessage(count))
	return count, nil
}

