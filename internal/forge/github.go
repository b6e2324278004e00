package forge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/log"
	"github.com/raphi011/brws/internal/page"
	"github.com/raphi011/brws/internal/pullrequest"
)

// GitHub renders pages on github.com and GitHub Enterprise.
type GitHub struct {
	repoRef
	enterprise bool
	apiBaseURL string
	token      string
	opts       Options
}

func newGitHub(ref repoRef, enterprise bool, opts Options) *GitHub {
	g := &GitHub{repoRef: ref, enterprise: enterprise, opts: opts}
	if enterprise {
		g.apiBaseURL = github.EnterpriseBaseURL(ref.host)
		g.token = opts.GHEToken
	} else {
		g.apiBaseURL = github.DefaultBaseURL
		g.token = opts.GitHubToken
	}
	return g
}

func (g *GitHub) Name() string {
	if g.enterprise {
		return "GitHub Enterprise"
	}
	return "GitHub"
}

func (g *GitHub) Render(ctx context.Context, pg page.Page) (string, error) {
	if o, ok := pg.(page.Open); ok {
		switch {
		case o.PullRequest:
			return g.pullRequest(ctx)
		case o.Website:
			return g.website(ctx), nil
		}
	}
	return githubLikeURL(g.repoRef, pg), nil
}

func (g *GitHub) client() (API, error) {
	if g.enterprise && g.token == "" {
		return nil, ErrGheTokenRequired
	}
	return g.opts.api(g.apiBaseURL, g.token)
}

func (g *GitHub) pullRequest(ctx context.Context) (string, error) {
	api, err := g.client()
	if err != nil {
		return "", err
	}

	branch := g.branch
	if branch == "" {
		if g.opts.CurrentBranch == nil {
			return "", &NoLocalRepoFoundError{Operation: "opening a pull request"}
		}
		if branch, err = g.opts.CurrentBranch(ctx); err != nil {
			return "", fmt.Errorf("failed to get current branch: %w", err)
		}
	}

	res, err := pullrequest.Find(ctx, api, branch, g.user, g.repo)
	if err != nil {
		return "", err
	}
	return res.URL(g.host), nil
}

// website returns the repository homepage when the API knows one, else the
// conventional GitHub Pages URL. Lookup failures fall through silently.
func (g *GitHub) website(ctx context.Context) string {
	logger := log.FromContext(ctx)

	if homepage, err := g.homepage(ctx); err != nil {
		if errors.Is(err, ErrGheTokenRequired) {
			logger.Debug("skipping homepage lookup", "reason", err)
		} else {
			logger.Debug("homepage lookup failed", "err", err)
		}
	} else if homepage != "" {
		return homepage
	}

	if !g.enterprise {
		return fmt.Sprintf("https://%s.github.io/%s", g.user, g.repo)
	}
	// https://docs.github.com/en/enterprise-server/pages
	withSubdomain := fmt.Sprintf("https://pages.%s/%s/%s", g.host, g.user, g.repo)
	withoutSubdomain := fmt.Sprintf("https://%s/pages/%s/%s", g.host, g.user, g.repo)
	return g.opts.prober().FirstAvailable(ctx, []string{withSubdomain}, withoutSubdomain)
}

func (g *GitHub) homepage(ctx context.Context) (string, error) {
	api, err := g.client()
	if err != nil {
		return "", err
	}
	return api.RepoHomepage(ctx, g.user, g.repo)
}

// githubLikeURL renders every page except pull requests and websites in the
// URL scheme shared by GitHub and GitLab.
func githubLikeURL(r repoRef, pg page.Page) string {
	base := r.base()
	switch p := pg.(type) {
	case page.Open:
		if r.branch != "" {
			return base + "/tree/" + r.branch
		}
		return base
	case page.Diff:
		return fmt.Sprintf("%s/compare/%s%s%s", base, p.LHS, p.Op, p.RHS)
	case page.Commit:
		return base + "/commit/" + p.Hash
	case page.Tag:
		return base + "/tree/" + p.Name
	case page.Issue:
		return fmt.Sprintf("%s/issues/%d", base, p.Number)
	case page.FileOrDir:
		kind := "blob"
		switch {
		case p.Blame:
			kind = "blame"
		case p.IsDir:
			kind = "tree"
		}
		u := joinPath(base, kind, p.Hash, p.RelativePath)
		if p.Line != nil && !p.IsDir {
			u += "#" + p.Line.String()
		}
		return u
	}
	return base
}

// joinPath joins URL path parts with "/", skipping empty parts.
func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "/")
}
