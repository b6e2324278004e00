// Package resolve turns command line flags, configuration and the local git
// repository into a [Request] describing what to browse.
//
// # Repository Selection
//
// The repository URL comes from, in order:
//
//   - -r/--repo: a remote name, a git URL, "user/repo" (github.com),
//     "host/user/repo", or a single word looked up with GitHub's
//     repository search (most stars wins)
//   - -R/--remote: the URL of the named remote
//   - the remote tracked by the branch (-b/--branch or the current branch),
//     falling back to origin on a detached HEAD
//
// SCP-like SSH URLs ("git@host:user/repo.git") are rewritten to
// "ssh://git@host:22/user/repo.git" so they parse as URLs.
//
// # Configuration
//
// The global configuration is merged with the repository's .brws.toml
// through [config.Resolver] once the repository root is known.
package resolve
