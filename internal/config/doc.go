// Package config handles brws configuration loading.
//
// Configuration is read from ~/.config/brws/config.toml (or
// $XDG_CONFIG_HOME/brws/config.toml) and then overridden by environment
// variables named GIT_BRWS_<KEY>. A missing file is not an error.
//
// # Keys
//
//	git_command        git executable (default "git")
//	ghe_url_host       GitHub Enterprise host not starting with "github."
//	ghe_ssh_port       port appended to GitHub Enterprise URLs
//	gitlab_url_host    self-hosted GitLab host not starting with "gitlab."
//	gitlab_ssh_port    port appended to self-hosted GitLab URLs
//	github_token       api.github.com token (falls back to $GITHUB_TOKEN)
//	ghe_token          GitHub Enterprise API token
//	https_proxy        proxy for API calls (falls back to $https_proxy)
//	browse_command     command that opens URLs instead of the system browser
//	short_commit_hash  use 7 character hashes in URLs
//
// # Per-repo overrides
//
// A .brws.toml at a repository root may override the host, port and
// short_commit_hash keys for that repository. [Resolver] merges it into the
// global config and caches the result per repository root.
package config
