// Package linter runs flake8 over a source tree and returns its raw output.
// It builds the command line from the configuration, installs flake8 once if
// it isn't found, bounds each run with a timeout, and classifies process
// failures so that they aren't mistaken for a clean result.
// Parsing the output is the job of the report package.
package linter

import (
	"strings"

	"github.com/suzuki-shunsuke/pep8-review/pkg/config"
)

// Mode selects what flake8 outputs.
type Mode int

const (
	// ModeNormal outputs one line per issue.
	ModeNormal Mode = iota
	// ModeCountOnly outputs only the total number of issues.
	ModeCountOnly
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCountOnly:
		return "count"
	default:
		return "unknown"
	}
}

// Args returns the flake8 arguments for the mode.
//
//	normal: <base_dir> [--config <config_file>]
//	count:  <base_dir> [--config <config_file>] --quiet --quiet --count
func Args(cfg *config.Config, mode Mode) []string {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = config.DefaultBaseDir
	}
	args := []string{baseDir}
	if cfg.ConfigFile != "" {
		args = append(args, "--config", cfg.ConfigFile)
	}
	if mode == ModeCountOnly {
		args = append(args, "--quiet", "--quiet", "--count")
	}
	return args
}

// SplitLines splits output on line boundaries and drops trailing empty lines.
func SplitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
