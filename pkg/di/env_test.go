package di_test

import (
	"testing"

	"github.com/suzuki-shunsuke/pep8-review/pkg/di"
)

func TestSecrets_SetFromEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name           string
		env            map[string]string
		expGitHubToken string
	}{
		{
			name: "empty",
			env:  map[string]string{},
		},
		{
			name:           "github token only",
			env:            map[string]string{"GITHUB_TOKEN": "gh_token"},
			expGitHubToken: "gh_token",
		},
		{
			name:           "dedicated token takes precedence",
			env:            map[string]string{"GITHUB_TOKEN": "gh_token", "PEP8_REVIEW_GITHUB_TOKEN": "pep8_token"},
			expGitHubToken: "pep8_token",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			s := &di.Secrets{}
			s.SetFromEnv(func(key string) string {
				return d.env[key]
			})
			if s.GitHubToken != d.expGitHubToken {
				t.Errorf("GitHubToken: wanted %q, got %q", d.expGitHubToken, s.GitHubToken)
			}
		})
	}
}

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		env  map[string]string
		exp  *di.Flags
	}{
		{
			name: "empty",
			env:  map[string]string{},
			exp:  &di.Flags{},
		},
		{
			name: "all values set",
			env: map[string]string{
				"GITHUB_REPOSITORY":           "owner/repo",
				"GITHUB_API_URL":              "https://api.github.com",
				"GITHUB_SERVER_URL":           "https://github.com",
				"GITHUB_EVENT_PATH":           "/home/runner/work/_temp/_github_workflow/event.json",
				"GITHUB_SHA":                  "abc123",
				"GITHUB_ACTIONS":              "true",
				"PEP8_REVIEW_KEYRING_ENABLED": "true",
			},
			exp: &di.Flags{
				GitHubRepository: "owner/repo",
				GitHubAPIURL:     "https://api.github.com",
				GitHubServerURL:  "https://github.com",
				GitHubEventPath:  "/home/runner/work/_temp/_github_workflow/event.json",
				GitHubSHA:        "abc123",
				IsGitHubActions:  true,
				KeyringEnabled:   true,
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			flags := &di.Flags{}
			di.SetEnv(flags, func(key string) string {
				return d.env[key]
			})
			if *flags != *d.exp {
				t.Errorf("wanted %+v, got %+v", d.exp, flags)
			}
		})
	}
}
