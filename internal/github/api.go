package github

import (
	"context"
	"fmt"
	"net/url"
)

// FindPRURL returns the URL of the most recently updated pull request whose
// head is branch in owner/repo, optionally restricted to author. It returns
// "" when there is none.
func (c *Client) FindPRURL(ctx context.Context, branch, owner, repo, author string) (string, error) {
	q := "type:pr head:" + branch
	if author != "" {
		q += " author:" + author
	}
	q += fmt.Sprintf(" repo:%s/%s", owner, repo)

	var res issueSearchResponse
	if err := c.get(ctx, "/search/issues", url.Values{"q": {q}, "sort": {"updated"}}, &res); err != nil {
		return "", err
	}
	if len(res.Items) == 0 {
		return "", nil
	}
	return res.Items[0].HTMLURL, nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, name string) (*repoResponse, error) {
	var res repoResponse
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	if err := c.get(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Repo returns the default branch and fork parent of owner/name.
func (c *Client) Repo(ctx context.Context, owner, name string) (*Repo, error) {
	res, err := c.fetchRepo(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	repo := &Repo{DefaultBranch: res.DefaultBranch}
	if p := res.Parent; p != nil {
		repo.Parent = &Parent{Owner: p.Owner.Login, Name: p.Name, DefaultBranch: p.DefaultBranch}
	}
	return repo, nil
}

// RepoHomepage returns the homepage configured for owner/name, or "" if unset.
func (c *Client) RepoHomepage(ctx context.Context, owner, name string) (string, error) {
	res, err := c.fetchRepo(ctx, owner, name)
	if err != nil {
		return "", err
	}
	if res.Homepage == nil {
		return "", nil
	}
	return *res.Homepage, nil
}

// MostPopularRepoByName returns the best match of a repository name search.
func (c *Client) MostPopularRepoByName(ctx context.Context, name string) (*SearchedRepo, error) {
	q := name + " in:name"
	var res repoSearchResponse
	if err := c.get(ctx, "/search/repositories", url.Values{"q": {q}, "per_page": {"1"}}, &res); err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, &NoSearchResultError{Query: q}
	}
	return &SearchedRepo{FullName: res.Items[0].FullName, CloneURL: res.Items[0].CloneURL}, nil
}
