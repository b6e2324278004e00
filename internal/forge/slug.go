package forge

import (
	"errors"
	"net/url"
	"strings"
)

// parseRepoURL parses an absolute repository URL, requiring a host.
func parseRepoURL(repoURL string) (*url.URL, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		msg := err.Error()
		var uerr *url.Error
		if errors.As(err, &uerr) {
			msg = uerr.Err.Error()
		}
		return nil, &BrokenURLError{URL: repoURL, Msg: msg}
	}
	if u.Hostname() == "" {
		return nil, &BrokenURLError{URL: repoURL, Msg: "no host in URL"}
	}
	return u, nil
}

func segments(path string) []string {
	var segs []string
	for s := range strings.SplitSeq(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// slugFromPath parses "/user/repo.git", "/user/repo" or "user/repo".
// Segments after the repository are ignored.
func slugFromPath(path string) (user, repo string, err error) {
	segs := segments(path)
	if len(segs) == 0 {
		return "", "", &NoUserInPathError{Path: path}
	}
	if len(segs) == 1 {
		return "", "", &NoRepoInPathError{Path: path}
	}
	return segs[0], strings.TrimSuffix(segs[1], ".git"), nil
}

// azureSlug is an Azure DevOps repository location.
type azureSlug struct {
	// Organization is the first path segment.
	Organization string
	// Project is empty when the URL names no project.
	Project string
	Repo    string
}

// Team is the path prefix in front of "_git": organization, plus project when known.
func (s azureSlug) Team() string {
	if s.Project == "" {
		return s.Organization
	}
	return s.Organization + "/" + s.Project
}

// WorkItemsProject is the project owning work items. Without an explicit
// project it is the project named like the repository.
func (s azureSlug) WorkItemsProject() string {
	if s.Project == "" {
		return s.Repo
	}
	return s.Project
}

// azureSlugFromPath parses "/org/_git/repo", "/org/project/_git/repo" and
// the SSH form "v3/org/project/repo".
func azureSlugFromPath(path string) (azureSlug, error) {
	segs := segments(path)
	if len(segs) > 0 && segs[0] == "v3" {
		segs = segs[1:]
	}
	if len(segs) == 0 || segs[0] == "_git" {
		return azureSlug{}, &NoUserInPathError{Path: path}
	}

	var team []string
	var repo string
	for i, s := range segs {
		if s == "_git" {
			team = segs[:i]
			if i+1 < len(segs) {
				repo = segs[i+1]
			}
			break
		}
	}
	if team == nil {
		if len(segs) < 2 {
			return azureSlug{}, &NoRepoInPathError{Path: path}
		}
		team, repo = segs[:len(segs)-1], segs[len(segs)-1]
	}
	repo = strings.TrimSuffix(repo, ".git")
	if repo == "" {
		return azureSlug{}, &NoRepoInPathError{Path: path}
	}

	slug := azureSlug{Organization: team[0], Repo: repo}
	if len(team) > 1 {
		slug.Project = team[1]
	}
	return slug, nil
}
