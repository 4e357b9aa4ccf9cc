package linter

import (
	"errors"
	"strings"
)

var (
	ErrLinterNotFound = errors.New("linter isn't found")
	ErrLinterTimeout  = errors.New("linter timed out")
	ErrLinterFailed   = errors.New("linter failed")
)

// LinterError is returned when the linter process couldn't produce a result.
// Err wraps one of ErrLinterNotFound, ErrLinterTimeout, or ErrLinterFailed.
type LinterError struct { //nolint:revive
	Command string
	Stderr  string
	Err     error
}

func (e *LinterError) Error() string {
	msg := e.Command + ": " + e.Err.Error()
	if s := firstLine(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *LinterError) Unwrap() error {
	return e.Err
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
