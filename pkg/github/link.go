package github

import (
	"fmt"
	"path"
	"strings"
)

const defaultServerURL = "https://github.com"

// LinkResolver builds links to lines of files at a commit.
type LinkResolver struct {
	ServerURL string
	RepoOwner string
	RepoName  string
	SHA       string
}

// ShortLink returns a markdown link such as
//
//	[./a.py#L10](https://github.com/owner/repo/blob/<sha>/a.py#L10)
//
// ok is false if the repository or the commit is unknown, or the file is
// outside of the repository.
func (r *LinkResolver) ShortLink(file string, line int) (string, bool) {
	if r.RepoOwner == "" || r.RepoName == "" || r.SHA == "" {
		return "", false
	}
	p := path.Clean(strings.ReplaceAll(file, `\`, "/"))
	if path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	serverURL := strings.TrimSuffix(r.ServerURL, "/")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return fmt.Sprintf("[%s#L%d](%s/%s/%s/blob/%s/%s#L%d)",
		file, line, serverURL, r.RepoOwner, r.RepoName, r.SHA, p, line), true
}
