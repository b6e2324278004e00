// Package forge renders browser URLs for pages of a repository on a git
// hosting service.
//
// [Route] picks the service from the host of a repository URL:
//
//   - github.com, and GitHub Enterprise on hosts starting with "github." or
//     equal to the configured ghe_url_host
//   - gitlab.com, and self-hosted GitLab on hosts starting with "gitlab." or
//     equal to the configured gitlab_url_host
//   - bitbucket.org
//   - Azure DevOps (dev.azure.com and its SSH hosts)
//
// The returned [Forge] turns a [page.Page] into a URL:
//
//	f, err := forge.Route("https://github.com/user/repo.git", opts)
//	u, err := f.Render(ctx, page.Commit{Hash: sha})
//
// # Network Access
//
// Most pages render offline. Websites and pull requests may call the GitHub
// API (see [github.Client]) or probe guessed URLs with HEAD requests
// (see [probe.Prober]). Both are injectable through [Options] for tests.
//
// # Service Differences
//
// GitLab rejects two-dot diffs and Bitbucket rejects all diffs. Only GitHub
// and GitHub Enterprise support pull requests. Azure DevOps has no line
// anchors, blame view or website.
package forge
