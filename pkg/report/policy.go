package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidCount = errors.New("count must be a non-negative integer")

// Exceeds reports whether count is strictly greater than threshold.
// A threshold of 0 triggers on any positive count.
func Exceeds(count, threshold int) bool {
	return count > threshold
}

// ParseCount parses the output of `flake8 --count --quiet --quiet`.
// The count is the last non-empty line. Empty output means zero.
// The error is returned along with 0 when the line isn't a non-negative integer.
func ParseCount(lines []string) (int, error) {
	for i := len(lines) - 1; i >= 0; i-- {
		s := strings.TrimSpace(lines[i])
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("parse the count %q: %w", s, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: %d", errInvalidCount, n)
		}
		return n, nil
	}
	return 0, nil
}

func countMessage(count int) string {
	return fmt.Sprintf("%d PEP 8 issues found", count)
}
