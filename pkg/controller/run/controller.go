// Package run runs a review session.
// It lints the source tree or counts issues, reports the result through the
// configured sinks, and optionally writes the findings as SARIF.
package run

import (
	"context"
	"io"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
	"github.com/suzuki-shunsuke/pep8-review/pkg/report"
	"github.com/suzuki-shunsuke/pep8-review/pkg/review"
)

type Controller struct {
	builder   Builder
	versioner Versioner
	sink      review.Reporter
	flusher   Flusher
	cfg       *config.Config
	param     *ParamRun
}

type Builder interface {
	Lint(ctx context.Context, logE *logrus.Entry) ([]*report.Finding, error)
	CountErrors(ctx context.Context, logE *logrus.Entry, shouldFail bool) (int, error)
}

type Versioner interface {
	Version(ctx context.Context, logE *logrus.Entry) (*version.Version, error)
}

// Flusher delivers a report accumulated during the session, such as a pull request comment.
type Flusher interface {
	Flush(ctx context.Context, logE *logrus.Entry) error
}

type Mode int

const (
	ModeLint Mode = iota
	ModeCount
)

const FormatSARIF = "sarif"

type ParamRun struct {
	Mode       Mode
	ShouldFail bool
	Format     string
	// Version is pep8-review's version written to SARIF.
	Version string
	Stdout  io.Writer
}

// New returns a Controller. flusher may be nil.
func New(builder Builder, versioner Versioner, sink review.Reporter, flusher Flusher, cfg *config.Config, param *ParamRun) *Controller {
	return &Controller{
		builder:   builder,
		versioner: versioner,
		sink:      sink,
		flusher:   flusher,
		cfg:       cfg,
		param:     param,
	}
}
