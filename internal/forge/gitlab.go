package forge

import (
	"context"
	"fmt"

	"github.com/raphi011/brws/internal/page"
)

// GitLab renders pages on gitlab.com and self-hosted GitLab.
// Pages follow GitHub's URL scheme, which GitLab redirects.
type GitLab struct {
	repoRef
	selfHosted bool
}

func (g *GitLab) Name() string {
	return "GitLab"
}

func (g *GitLab) Render(_ context.Context, pg page.Page) (string, error) {
	switch p := pg.(type) {
	case page.Open:
		if p.PullRequest {
			return "", &PullReqNotSupportedError{Service: g.Name()}
		}
		if p.Website {
			return g.website(), nil
		}
	case page.Diff:
		if p.Op == page.TwoDots {
			return "", ErrGitLabDiffNotSupported
		}
	}
	return githubLikeURL(g.repoRef, pg), nil
}

// website returns the GitLab Pages URL of the repository.
func (g *GitLab) website() string {
	if !g.selfHosted {
		return fmt.Sprintf("https://%s.gitlab.io/%s", g.user, g.repo)
	}
	return fmt.Sprintf("https://%s.%s/%s", g.user, g.host, g.repo)
}
