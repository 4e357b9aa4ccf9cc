// Package review delivers reports to the console and to GitHub pull requests.
package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

// Console writes markdown to stdout and warnings and failures to stderr.
type Console struct {
	stdout io.Writer
	stderr io.Writer
	red    colorFunc
	yellow colorFunc
	failed bool
}

func NewConsole(stdout, stderr io.Writer) *Console {
	return &Console{
		stdout: stdout,
		stderr: stderr,
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

func (c *Console) Markdown(text string) {
	fmt.Fprint(c.stdout, withNewLine(text))
}

func (c *Console) Warn(text string) {
	fmt.Fprintf(c.stderr, "%s %s\n", c.yellow("WARN"), text)
}

func (c *Console) Fail(text string) {
	c.failed = true
	fmt.Fprintf(c.stderr, "%s %s\n", c.red("FAIL"), text)
}

func (c *Console) Failed() bool {
	return c.failed
}

func withNewLine(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
