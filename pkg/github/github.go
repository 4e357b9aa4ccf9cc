// Package github creates a GitHub API client and builds links to files on GitHub.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

type (
	Client       = github.Client
	IssueComment = github.IssueComment
	Response     = github.Response
)

// IssuesService is the subset of the GitHub Issues API used to post a review.
type IssuesService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *IssueComment) (*IssueComment, *Response, error)
}

type ParamNew struct {
	Token          string
	KeyringEnabled bool
	// APIURL is the URL of the GitHub API such as https://ghes.example.com/api/v3.
	// If this is empty or https://api.github.com, github.com is used.
	APIURL string
}

// New creates a GitHub API client.
// The token is taken from param, then from the OS keyring if it's enabled.
// Without a token, the client is unauthenticated.
func New(ctx context.Context, logE *logrus.Entry, param *ParamNew) (*Client, error) {
	client := github.NewClient(getHTTPClientForGitHub(ctx, logE, param))
	apiURL := strings.TrimSuffix(param.APIURL, "/")
	if apiURL == "" || apiURL == defaultAPIURL {
		return client, nil
	}
	c, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("configure GitHub Enterprise Server URLs: %w", err)
	}
	return c, nil
}

func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func getHTTPClientForGitHub(ctx context.Context, logE *logrus.Entry, param *ParamNew) *http.Client {
	if param.Token == "" {
		if param.KeyringEnabled {
			return oauth2.NewClient(ctx, newKeyringTokenSource(logE))
		}
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: param.Token},
	))
}
