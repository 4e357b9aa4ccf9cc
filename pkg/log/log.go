// Package log creates the logger of pep8-review.
package log

import (
	"log/slog"
	"os"

	slogrus "github.com/samber/slog-logrus"
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return logger.WithFields(logrus.Fields{
		"program": "pep8-review",
		"version": version,
	})
}

// NewSlog returns a slog.Logger writing through logE's logger.
// It's passed to libraries which log with slog.
// The level is filtered by the logrus logger.
func NewSlog(logE *logrus.Entry) *slog.Logger {
	logger := slog.New(slogrus.Option{
		Level:  slog.LevelDebug,
		Logger: logE.Logger,
	}.NewLogrusHandler())
	for k, v := range logE.Data {
		logger = logger.With(k, v)
	}
	return logger
}
