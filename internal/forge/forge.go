package forge

import (
	"context"

	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/page"
	"github.com/raphi011/brws/internal/probe"
	"github.com/raphi011/brws/internal/pullrequest"
)

// Forge renders pages of one repository on one hosting service.
type Forge interface {
	// Name returns the hosting service name, e.g. "GitHub" or "Azure DevOps".
	Name() string

	// Render returns the URL showing pg.
	Render(ctx context.Context, pg page.Page) (string, error)
}

// API is the GitHub API surface used for pull requests and homepages.
type API interface {
	pullrequest.API
	RepoHomepage(ctx context.Context, owner, name string) (string, error)
}

// Prober picks the first reachable URL out of candidates.
type Prober interface {
	FirstAvailable(ctx context.Context, candidates []string, fallback string) string
}

// Options configures routing and rendering.
type Options struct {
	// Branch is shown by Open and used for pull requests. Empty means the
	// repository's default view and, for pull requests, CurrentBranch.
	Branch string

	GHEURLHost    string
	GHESSHPort    uint16
	GitLabURLHost string
	GitLabSSHPort uint16

	GitHubToken string
	GHEToken    string
	HTTPSProxy  string

	// NewAPI builds a GitHub API client. Nil means the real client.
	NewAPI func(baseURL, token string) (API, error)
	// Probe checks guessed homepage URLs. Nil means HEAD requests via HTTPSProxy.
	Probe Prober
	// CurrentBranch reports the checked out branch. Nil means there is no
	// local repository.
	CurrentBranch func(ctx context.Context) (string, error)
}

func (o *Options) api(baseURL, token string) (API, error) {
	if o.NewAPI != nil {
		return o.NewAPI(baseURL, token)
	}
	return github.NewClient(baseURL, token, o.HTTPSProxy)
}

func (o *Options) prober() Prober {
	if o.Probe != nil {
		return o.Probe
	}
	return probe.New(o.HTTPSProxy)
}
