package forge

import (
	"fmt"
	"strings"
)

// Azure DevOps hosts. Repositories on any of them render on dev.azure.com.
var azureHosts = map[string]bool{
	"dev.azure.com":           true,
	"ssh.dev.azure.com":       true,
	"vs-ssh.visualstudio.com": true,
}

// Route classifies the host of repoURL and returns the Forge for it.
//
// Hosts are compared case-insensitively. Known hosts are matched exactly first. Then hosts starting with "github."
// or equal to GHEURLHost are GitHub Enterprise, hosts starting with "gitlab."
// or equal to GitLabURLHost are self-hosted GitLab. A configured SSH port is
// appended to self-hosted hosts.
func Route(repoURL string, opts Options) (Forge, error) {
	u, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	host := strings.ToLower(u.Hostname())

	if azureHosts[host] {
		slug, err := azureSlugFromPath(u.Path)
		if err != nil {
			return nil, err
		}
		return &AzureDevOps{slug: slug, opts: opts}, nil
	}

	user, repo, err := slugFromPath(u.Path)
	if err != nil {
		return nil, err
	}
	ref := repoRef{host: host, user: user, repo: repo, branch: opts.Branch}

	switch host {
	case "github.com":
		return newGitHub(ref, false, opts), nil
	case "gitlab.com":
		return &GitLab{repoRef: ref}, nil
	case "bitbucket.org":
		return &Bitbucket{repoRef: ref, opts: opts}, nil
	}

	switch {
	case strings.HasPrefix(host, "github."):
		ref.host = withPort(host, opts.GHESSHPort)
		return newGitHub(ref, true, opts), nil
	case strings.HasPrefix(host, "gitlab.") || (opts.GitLabURLHost != "" && strings.EqualFold(host, opts.GitLabURLHost)):
		ref.host = withPort(host, opts.GitLabSSHPort)
		return &GitLab{repoRef: ref, selfHosted: true}, nil
	case opts.GHEURLHost != "" && strings.EqualFold(host, opts.GHEURLHost):
		ref.host = withPort(host, opts.GHESSHPort)
		return newGitHub(ref, true, opts), nil
	}
	return nil, &UnknownHostingServiceError{URL: repoURL}
}

func withPort(host string, port uint16) string {
	if port == 0 {
		return host
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// repoRef locates a repository on a GitHub-like host. host may carry a port.
type repoRef struct {
	host   string
	user   string
	repo   string
	branch string
}

func (r repoRef) base() string {
	return fmt.Sprintf("https://%s/%s/%s", r.host, r.user, r.repo)
}
