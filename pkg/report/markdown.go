package report

import (
	"fmt"
	"strings"
)

const (
	tableHeading   = "### pep8-review found issues"
	tableHeader    = "| File | Line | Column | Reason |"
	tableSeparator = "|------|------|--------|--------|"
)

// NormalizeReason trims the reason and replaces single quotes with backticks
// so that quoted names render as inline code.
func NormalizeReason(reason string) string {
	return strings.ReplaceAll(strings.TrimSpace(reason), "'", "`")
}

// RenderTable renders findings as a markdown table in the given order.
// If links is nil or has no link for a finding, the file path is rendered as is.
func RenderTable(findings []*Finding, links LinkResolver) string {
	b := &strings.Builder{}
	b.WriteString(tableHeading + "\n\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(tableSeparator + "\n")
	for _, f := range findings {
		fmt.Fprintf(b, "| %s | %d | %d | %s |\n", escapeCell(fileCell(f, links)), f.Line, f.Column, escapeCell(NormalizeReason(f.Reason)))
	}
	return b.String()
}

// escapeCell escapes pipes, which would otherwise split the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func fileCell(f *Finding, links LinkResolver) string {
	if links == nil {
		return f.File
	}
	if link, ok := links.ShortLink(f.File, f.Line); ok {
		return link
	}
	return f.File
}
