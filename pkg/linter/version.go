package linter

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

var (
	errVersionNotFound = errors.New("version isn't found in the output")
	versionPattern     = regexp.MustCompile(`\d+(?:\.\d+)+`)
)

// ParseVersion extracts the version from the output of `flake8 --version`.
//
//	7.1.1 (mccabe: 0.7.0, pycodestyle: 2.12.1, pyflakes: 3.2.0) CPython 3.12.4 on Linux
func ParseVersion(s string) (*version.Version, error) {
	m := versionPattern.FindString(s)
	if m == "" {
		return nil, errVersionNotFound
	}
	v, err := version.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("parse a version: %w", err)
	}
	return v, nil
}

// CheckVersion reports whether v is older than minVersion.
// An empty minVersion means there is no requirement.
func CheckVersion(v *version.Version, minVersion string) (bool, error) {
	if minVersion == "" {
		return false, nil
	}
	m, err := version.NewVersion(minVersion)
	if err != nil {
		return false, fmt.Errorf("parse min_version: %w", err)
	}
	return v.LessThan(m), nil
}
