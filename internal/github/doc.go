// Package github is a small client for the GitHub REST API (v3).
//
// It covers the four calls brws makes: pull request search, repository
// metadata (default branch and fork parent), the repository homepage and
// repository search by name. The same client talks to github.com
// ([DefaultBaseURL]) and GitHub Enterprise ([EnterpriseBaseURL]).
//
// Non-200 responses become [*StatusError]. Successful GET responses are
// memoized per URL, so [Client.Repo] and [Client.RepoHomepage] for the same
// repository cost one request.
package github
