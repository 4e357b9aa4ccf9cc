package di

// Secrets holds sensitive tokens for GitHub API authentication.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv sets secrets from environment variables.
func (s *Secrets) SetFromEnv(getEnv func(string) string) {
	s.GitHubToken = getEnv("PEP8_REVIEW_GITHUB_TOKEN")
	if s.GitHubToken == "" {
		s.GitHubToken = getEnv("GITHUB_TOKEN")
	}
}

// SetEnv populates flags from environment variables.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.GitHubRepository = getEnv("GITHUB_REPOSITORY")
	flags.GitHubAPIURL = getEnv("GITHUB_API_URL")
	flags.GitHubServerURL = getEnv("GITHUB_SERVER_URL")
	flags.GitHubEventPath = getEnv("GITHUB_EVENT_PATH")
	flags.GitHubSHA = getEnv("GITHUB_SHA")
	trueS := "true"
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == trueS
	flags.KeyringEnabled = getEnv("PEP8_REVIEW_KEYRING_ENABLED") == trueS
}
