package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/log"
)

// Git is the subset of git queries used to find the repository URL.
type Git interface {
	RemoteURL(ctx context.Context, name string) (string, error)
	Remotes(ctx context.Context) ([]string, error)
	TrackingRemoteURL(ctx context.Context, branch string) (url, remote string, err error)
}

// Searcher finds a repository by name.
type Searcher interface {
	MostPopularRepoByName(ctx context.Context, name string) (*github.SearchedRepo, error)
}

// ConvertSSHURL rewrites "git@host:path" to "ssh://git@host:22/path".
// Other URLs are returned unchanged.
func ConvertSSHURL(u string) string {
	if !strings.HasPrefix(u, "git@") {
		return u
	}
	host, path, ok := strings.Cut(u, ":")
	if !ok {
		return "ssh://" + u
	}
	return "ssh://" + host + ":22/" + path
}

func hasURLScheme(s string) bool {
	return strings.HasPrefix(s, "git@") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

// normalizeRepo turns a --repo value into a repository URL. g may be nil
// outside of a repository; search is only called for single words.
func normalizeRepo(ctx context.Context, s string, g Git, search func() (Searcher, error)) (string, error) {
	if g != nil {
		if u, err := g.RemoteURL(ctx, s); err == nil {
			log.FromContext(ctx).Debug("--repo names a remote", "remote", s, "url", u)
			return u, nil
		}
	}

	withGit := s
	if !strings.HasSuffix(withGit, ".git") {
		withGit += ".git"
	}
	if hasURLScheme(s) {
		return withGit, nil
	}

	switch strings.Count(s, "/") {
	case 0:
		if s == "" || strings.ContainsAny(s, ": ") {
			return "", &BrokenRepoFormatError{Input: s}
		}
		searcher, err := search()
		if err != nil {
			return "", err
		}
		found, err := searcher.MostPopularRepoByName(ctx, s)
		if err != nil {
			return "", fmt.Errorf("failed to search repository %q: %w", s, err)
		}
		log.FromContext(ctx).Debug("found repository by name", "name", s, "repo", found.FullName)
		return found.CloneURL, nil
	case 1:
		return "https://github.com/" + withGit, nil
	case 2:
		return "https://" + withGit, nil
	}
	return "", &BrokenRepoFormatError{Input: s}
}

// remoteURL returns the URL of the named remote, suggesting similar names
// when it doesn't exist.
func remoteURL(ctx context.Context, g Git, name string) (string, error) {
	u, err := g.RemoteURL(ctx, name)
	if err == nil {
		return u, nil
	}
	remotes, rerr := g.Remotes(ctx)
	if rerr != nil {
		log.FromContext(ctx).Debug("listing remotes failed", "err", rerr)
	}
	return "", &UnknownRemoteError{Name: name, Suggestions: similar(name, remotes), Err: err}
}

// similar returns the candidates fuzzy-matching name, best first.
func similar(name string, candidates []string) []string {
	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		out = append(out, m.Str)
	}
	return out
}
