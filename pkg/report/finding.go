package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedFinding = errors.New("malformed finding")

// Finding is an issue reported by flake8.
type Finding struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Reason string `json:"reason"`
}

// Code returns the error code at the head of Reason such as E302.
func (f *Finding) Code() string {
	code, _, _ := strings.Cut(strings.TrimSpace(f.Reason), " ")
	return code
}

// ParseError is returned when a line of the linter output isn't a finding.
type ParseError struct {
	// Index is the 1-based position of Line in the output.
	Index int
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Index, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFinding parses a line `<file>:<line>:<column>: <reason>`.
// Only the first three colons are separators, so a reason may contain colons.
func ParseFinding(line string) (*Finding, error) {
	fields := strings.SplitN(line, ":", 4) //nolint:mnd
	if len(fields) != 4 {                  //nolint:mnd
		return nil, fmt.Errorf("%w: expected <file>:<line>:<column>: <reason>", ErrMalformedFinding)
	}
	if fields[0] == "" {
		return nil, fmt.Errorf("%w: file is empty", ErrMalformedFinding)
	}
	lineNum, err := parsePosition(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: line: %w", ErrMalformedFinding, err)
	}
	col, err := parsePosition(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: column: %w", ErrMalformedFinding, err)
	}
	return &Finding{
		File:   fields[0],
		Line:   lineNum,
		Column: col,
		Reason: fields[3],
	}, nil
}

// ParseFindings parses every line and stops at the first malformed line.
func ParseFindings(lines []string) ([]*Finding, error) {
	findings := make([]*Finding, len(lines))
	for i, line := range lines {
		f, err := ParseFinding(line)
		if err != nil {
			return nil, &ParseError{Index: i + 1, Line: line, Err: err}
		}
		findings[i] = f
	}
	return findings, nil
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q as an integer: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%d isn't positive", n)
	}
	return n, nil
}
