package di

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pep8-review/pkg/github"
	"github.com/suzuki-shunsuke/pep8-review/pkg/report"
	"github.com/suzuki-shunsuke/pep8-review/pkg/review"
)

// Review is the source control context of a review session.
type Review struct {
	RepoOwner   string
	RepoName    string
	PullRequest int
	SHA         string
	ServerURL   string
}

// Valid reports whether a comment can be posted to the pull request.
func (r *Review) Valid() bool {
	return r != nil && r.RepoOwner != "" && r.RepoName != "" && r.PullRequest > 0
}

func (r *Review) Target() *review.Target {
	return &review.Target{
		RepoOwner:   r.RepoOwner,
		RepoName:    r.RepoName,
		PullRequest: r.PullRequest,
	}
}

// populateReviewFromGitHubActionsEnv fills missing fields from GITHUB_REPOSITORY,
// GITHUB_SHA, and the event file.
func populateReviewFromGitHubActionsEnv(fs afero.Fs, rv *Review, flags *Flags) error {
	if rv.RepoOwner == "" || rv.RepoName == "" {
		repo := flags.GitHubRepository
		owner, repoName, ok := strings.Cut(repo, "/")
		if !ok || owner == "" || repoName == "" {
			return fmt.Errorf("GITHUB_REPOSITORY is not set or invalid: %s", repo)
		}
		if rv.RepoOwner == "" {
			rv.RepoOwner = owner
		}
		if rv.RepoName == "" {
			rv.RepoName = repoName
		}
	}
	if flags.GitHubEventPath != "" && (rv.PullRequest == 0 || rv.SHA == "") {
		ev := &Event{}
		if err := readEvent(fs, ev, flags.GitHubEventPath); err != nil {
			return err
		}
		if rv.PullRequest == 0 {
			rv.PullRequest = ev.PRNumber()
		}
		if rv.SHA == "" {
			rv.SHA = ev.SHA()
		}
	}
	if rv.SHA == "" {
		rv.SHA = flags.GitHubSHA
	}
	return nil
}

// setupReview resolves the source control context from flags, and from the
// GitHub Actions environment when running in GitHub Actions.
func setupReview(fs afero.Fs, logE *logrus.Entry, flags *Flags) *Review {
	rv := &Review{
		RepoOwner:   flags.RepoOwner,
		RepoName:    flags.RepoName,
		PullRequest: flags.PR,
		SHA:         flags.SHA,
		ServerURL:   flags.GitHubServerURL,
	}
	if flags.IsGitHubActions {
		if err := populateReviewFromGitHubActionsEnv(fs, rv, flags); err != nil {
			logerr.WithError(logE, err).Error("set review information")
		}
	}
	return rv
}

// linkResolver returns a LinkResolver if the source code is on GitHub.
// It returns nil so that file paths are rendered as plain text otherwise.
func linkResolver(rv *Review, flags *Flags) report.LinkResolver {
	if !flags.IsGitHub() || rv.RepoOwner == "" || rv.RepoName == "" || rv.SHA == "" {
		return nil
	}
	return &github.LinkResolver{
		ServerURL: rv.ServerURL,
		RepoOwner: rv.RepoOwner,
		RepoName:  rv.RepoName,
		SHA:       rv.SHA,
	}
}
