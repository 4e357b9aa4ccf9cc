package di

import (
	"github.com/suzuki-shunsuke/pep8-review/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pep8-review/pkg/controller/run"
)

const ProviderGitHub = "github"

// Flags holds the command line flags and environment variables of the run and count commands.
type Flags struct {
	*flag.GlobalFlags

	Mode run.Mode

	Threshold    int
	ThresholdSet bool
	BaseDir      string
	Flake8Config string
	Fail         bool
	Format       string

	Review   bool
	Provider string

	RepoOwner string
	RepoName  string
	SHA       string
	PR        int

	IsGitHubActions bool
	KeyringEnabled  bool

	GitHubRepository string
	GitHubAPIURL     string
	GitHubServerURL  string
	GitHubEventPath  string
	GitHubSHA        string
}

// IsGitHub reports whether the source code is hosted on GitHub.
func (f *Flags) IsGitHub() bool {
	return f.IsGitHubActions || f.Provider == ProviderGitHub
}
