package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pep8-review/pkg/github"
)

const commentFooter = "Reported by [pep8-review](https://github.com/suzuki-shunsuke/pep8-review)"

// Target is the pull request to which the report is posted.
type Target struct {
	RepoOwner   string
	RepoName    string
	PullRequest int
}

// GitHub accumulates the report and posts it as a single pull request comment.
type GitHub struct {
	issues    github.IssuesService
	target    *Target
	markdowns []string
	warnings  []string
	failures  []string
}

func NewGitHub(issues github.IssuesService, target *Target) *GitHub {
	return &GitHub{
		issues: issues,
		target: target,
	}
}

func (g *GitHub) Markdown(text string) {
	g.markdowns = append(g.markdowns, text)
}

func (g *GitHub) Warn(text string) {
	g.warnings = append(g.warnings, text)
}

func (g *GitHub) Fail(text string) {
	g.failures = append(g.failures, text)
}

func (g *GitHub) Failed() bool {
	return len(g.failures) > 0
}

func (g *GitHub) empty() bool {
	return len(g.markdowns) == 0 && len(g.warnings) == 0 && len(g.failures) == 0
}

// Body returns the comment body.
func (g *GitHub) Body() string {
	b := &strings.Builder{}
	for _, s := range g.failures {
		fmt.Fprintf(b, ":no_entry_sign: %s\n", s)
	}
	for _, s := range g.warnings {
		fmt.Fprintf(b, ":warning: %s\n", s)
	}
	for _, s := range g.markdowns {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(withNewLine(s))
	}
	b.WriteString("\n" + commentFooter)
	return b.String()
}

// Flush posts the accumulated report.
// Nothing is posted if nothing was reported.
func (g *GitHub) Flush(ctx context.Context, logE *logrus.Entry) error {
	if g.empty() {
		logE.Debug("skip posting a comment because nothing was reported")
		return nil
	}
	cmt := &github.IssueComment{
		Body: github.Ptr(g.Body()),
	}
	_, resp, err := g.issues.CreateComment(ctx, g.target.RepoOwner, g.target.RepoName, g.target.PullRequest, cmt)
	if err != nil {
		code := 0
		if resp != nil {
			code = resp.StatusCode
		}
		return fmt.Errorf("create a pull request comment: %w", logerr.WithFields(err, logrus.Fields{
			"repo_owner":   g.target.RepoOwner,
			"repo_name":    g.target.RepoName,
			"pull_request": g.target.PullRequest,
			"status_code":  code,
		}))
	}
	logE.WithField("pull_request", g.target.PullRequest).Info("posted the report")
	return nil
}
