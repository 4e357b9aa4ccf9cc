package run

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/pep8-review/pkg/report"
	"github.com/suzuki-shunsuke/pep8-review/pkg/sarif"
)

const ruleUnknown = "flake8"

func (c *Controller) outputSARIF(findings []*report.Finding) error {
	log := sarif.New(sarif.Driver{
		Name:           "pep8-review",
		InformationURI: "https://github.com/suzuki-shunsuke/pep8-review",
		Version:        c.param.Version,
		Rules:          buildSARIFRules(findings),
	}, buildSARIFResults(findings))

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func ruleID(f *report.Finding) string {
	if code := f.Code(); code != "" {
		return code
	}
	return ruleUnknown
}

// level returns "error" for pyflakes issues and syntax errors and "warning" for the others.
func level(code string) string {
	if strings.HasPrefix(code, "F") || strings.HasPrefix(code, "E9") {
		return "error"
	}
	return "warning"
}

func buildSARIFRules(findings []*report.Finding) []sarif.Rule {
	var rules []sarif.Rule
	seen := map[string]struct{}{}
	for _, f := range findings {
		id := ruleID(f)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rules = append(rules, sarif.Rule{
			ID: id,
			ShortDescription: sarif.Message{
				Text: "flake8 " + id,
			},
			HelpURI: "https://www.flake8rules.com/rules/" + id + ".html",
		})
	}
	return rules
}

func buildSARIFResults(findings []*report.Finding) []sarif.Result {
	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		id := ruleID(f)
		results = append(results, sarif.Result{
			RuleID:  id,
			Level:   level(id),
			Message: sarif.Message{Text: strings.TrimSpace(f.Reason)},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: strings.TrimPrefix(f.File, "./"),
						},
						Region: sarif.Region{
							StartLine:   f.Line,
							StartColumn: f.Column,
						},
					},
				},
			},
		})
	}
	return results
}
