package report

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/linter"
)

// Sink receives the report.
type Sink interface {
	// Markdown appends a markdown block.
	Markdown(text string)
	// Warn appends a warning which doesn't block the review.
	Warn(text string)
	// Fail appends a failure which blocks the review.
	Fail(text string)
}

// LinkResolver returns a clickable reference to a line of a file.
// ok is false if the source control context is unknown.
type LinkResolver interface {
	ShortLink(file string, line int) (link string, ok bool)
}

// Invoker runs the linter and returns its output lines.
type Invoker interface {
	Run(ctx context.Context, logE *logrus.Entry, mode linter.Mode) ([]string, error)
}
