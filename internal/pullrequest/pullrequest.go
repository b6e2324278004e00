// Package pullrequest finds the pull request page for a branch: an existing
// pull request, or the compare view that creates one.
package pullrequest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/log"
)

// API is the subset of the GitHub client used here.
type API interface {
	FindPRURL(ctx context.Context, branch, owner, repo, author string) (string, error)
	Repo(ctx context.Context, owner, name string) (*github.Repo, error)
}

// Result is either Existing or New.
type Result interface {
	// URL renders the page for host (which may carry a port).
	URL(host string) string
}

// Existing is an open pull request.
type Existing struct {
	HTMLURL string
}

func (e Existing) URL(string) string {
	return e.HTMLURL
}

// New is a pull request that still has to be created: the compare view of
// Branch against DefaultBranch of Author/Repo. Fork is set when Branch
// lives in a fork and HeadOwner is that fork's owner.
type New struct {
	Author        string
	Repo          string
	DefaultBranch string
	Branch        string
	Fork          bool
	HeadOwner     string
}

func (n New) URL(host string) string {
	head := n.Branch
	if n.Fork {
		head = n.HeadOwner + ":" + n.Branch
	}
	return fmt.Sprintf("https://%s/%s/%s/compare/%s...%s", host, n.Author, n.Repo, n.DefaultBranch, head)
}

// Find resolves the pull request page of branch in owner/repo. The pull
// request search and the repository lookup run concurrently. For a fork the
// parent repository is searched for a pull request opened by owner.
func Find(ctx context.Context, api API, branch, owner, repo string) (Result, error) {
	var (
		prURL string
		meta  *github.Repo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := api.FindPRURL(gctx, branch, owner, repo, "")
		if err != nil {
			return fmt.Errorf("failed to search pull requests: %w", err)
		}
		prURL = u
		return nil
	})
	g.Go(func() error {
		r, err := api.Repo(gctx, owner, repo)
		if err != nil {
			return fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repo, err)
		}
		meta = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx)
	if prURL != "" {
		logger.Debug("found pull request", "url", prURL)
		return Existing{HTMLURL: prURL}, nil
	}

	if p := meta.Parent; p != nil {
		logger.Debug("repository is a fork", "parent", p.Owner+"/"+p.Name)
		u, err := api.FindPRURL(ctx, branch, p.Owner, p.Name, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to search pull requests in %s/%s: %w", p.Owner, p.Name, err)
		}
		if u != "" {
			return Existing{HTMLURL: u}, nil
		}
		return New{
			Author:        p.Owner,
			Repo:          p.Name,
			DefaultBranch: p.DefaultBranch,
			Branch:        branch,
			Fork:          true,
			HeadOwner:     owner,
		}, nil
	}

	return New{
		Author:        owner,
		Repo:          repo,
		DefaultBranch: meta.DefaultBranch,
		Branch:        branch,
	}, nil
}
