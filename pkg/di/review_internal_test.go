package di

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pep8-review/pkg/github"
)

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func Test_populateReviewFromGitHubActionsEnv(t *testing.T) { //nolint:funlen
	t.Parallel()
	const eventPath = "/tmp/event.json"
	data := []struct {
		name   string
		review *Review
		flags  *Flags
		event  string
		exp    *Review
		isErr  bool
	}{
		{
			name:   "already has repo",
			review: &Review{RepoOwner: "o", RepoName: "existing-repo"},
			flags:  &Flags{GitHubRepository: "owner/other-repo"},
			exp:    &Review{RepoOwner: "o", RepoName: "existing-repo"},
		},
		{
			name:   "GITHUB_REPOSITORY",
			review: &Review{},
			flags:  &Flags{GitHubRepository: "owner/my-repo", GitHubSHA: "def456"},
			exp:    &Review{RepoOwner: "owner", RepoName: "my-repo", SHA: "def456"},
		},
		{
			name:   "invalid GITHUB_REPOSITORY",
			review: &Review{},
			flags:  &Flags{GitHubRepository: "noslash"},
			isErr:  true,
		},
		{
			name:   "pull request event",
			review: &Review{},
			flags: &Flags{
				GitHubRepository: "owner/my-repo",
				GitHubEventPath:  eventPath,
				GitHubSHA:        "merge-commit",
			},
			event: `{"pull_request": {"number": 42, "head": {"sha": "abc123"}}}`,
			exp:   &Review{RepoOwner: "owner", RepoName: "my-repo", PullRequest: 42, SHA: "abc123"},
		},
		{
			name:   "push event",
			review: &Review{},
			flags: &Flags{
				GitHubRepository: "owner/my-repo",
				GitHubEventPath:  eventPath,
				GitHubSHA:        "def456",
			},
			event: `{"repository": {"name": "my-repo", "owner": {"login": "owner"}}}`,
			exp:   &Review{RepoOwner: "owner", RepoName: "my-repo", SHA: "def456"},
		},
		{
			name:   "flags take precedence",
			review: &Review{PullRequest: 7, SHA: "fromflag"},
			flags: &Flags{
				GitHubRepository: "owner/my-repo",
				GitHubEventPath:  eventPath,
			},
			event: `{"pull_request": {"number": 42, "head": {"sha": "abc123"}}}`,
			exp:   &Review{RepoOwner: "owner", RepoName: "my-repo", PullRequest: 7, SHA: "fromflag"},
		},
		{
			name:   "broken event",
			review: &Review{},
			flags: &Flags{
				GitHubRepository: "owner/my-repo",
				GitHubEventPath:  eventPath,
			},
			event: `{`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if d.event != "" {
				if err := afero.WriteFile(fs, eventPath, []byte(d.event), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			err := populateReviewFromGitHubActionsEnv(fs, d.review, d.flags)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, d.review); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func Test_setupReview(t *testing.T) {
	t.Parallel()
	logE := newLogE()

	t.Run("flags", func(t *testing.T) {
		t.Parallel()
		flags := &Flags{
			RepoOwner:       "owner",
			RepoName:        "repo",
			PR:              42,
			SHA:             "abc123",
			GitHubServerURL: "https://ghes.example.com",
		}
		got := setupReview(afero.NewMemMapFs(), logE, flags)
		exp := &Review{RepoOwner: "owner", RepoName: "repo", PullRequest: 42, SHA: "abc123", ServerURL: "https://ghes.example.com"}
		if diff := cmp.Diff(exp, got); diff != "" {
			t.Fatal(diff)
		}
		if !got.Valid() {
			t.Fatal("review must be valid")
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		got := setupReview(afero.NewMemMapFs(), logE, &Flags{})
		if got.Valid() {
			t.Fatalf("review must be invalid: %+v", got)
		}
	})
}

func Test_linkResolver(t *testing.T) {
	t.Parallel()
	rv := &Review{RepoOwner: "o", RepoName: "r", SHA: "sha", ServerURL: "https://github.com"}
	data := []struct {
		name   string
		review *Review
		flags  *Flags
		exp    *github.LinkResolver
	}{
		{
			name:   "GitHub Actions",
			review: rv,
			flags:  &Flags{IsGitHubActions: true},
			exp:    &github.LinkResolver{ServerURL: "https://github.com", RepoOwner: "o", RepoName: "r", SHA: "sha"},
		},
		{
			name:   "provider flag",
			review: rv,
			flags:  &Flags{Provider: ProviderGitHub},
			exp:    &github.LinkResolver{ServerURL: "https://github.com", RepoOwner: "o", RepoName: "r", SHA: "sha"},
		},
		{
			name:   "unknown provider",
			review: rv,
			flags:  &Flags{},
		},
		{
			name:   "sha is unknown",
			review: &Review{RepoOwner: "o", RepoName: "r"},
			flags:  &Flags{IsGitHubActions: true},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := linkResolver(d.review, d.flags)
			if d.exp == nil {
				if got != nil {
					t.Fatalf("wanted nil, got %+v", got)
				}
				return
			}
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
