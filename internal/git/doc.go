// Package git provides the git queries brws needs, via shell commands.
//
// All operations call the configured git executable through [os/exec] rather
// than a Go git library, so results match the user's git setup (config,
// worktrees, credential helpers). Every call runs as "git -C <dir> ...".
//
// # Queries
//
//   - [Repo.Hash], [Repo.TagHash]: resolve revisions and tags to commits
//   - [Repo.RemoteURL], [Repo.TrackingRemoteURL], [Repo.Remotes]: remotes
//   - [Repo.RootDir], [Repo.CurrentBranch]: working tree state
//   - [Repo.RemoteBranch], [Repo.RemoteContains]: whether a commit was pushed
//
// # Errors
//
// A non-zero git exit is a [*CommandError] carrying git's stderr. Lookups
// that fail because the object doesn't exist are wrapped in
// [*ObjectNotFoundError] naming what was looked up.
package git
