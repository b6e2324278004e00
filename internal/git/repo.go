package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Hash resolves rev to a full commit hash.
func (r *Repo) Hash(ctx context.Context, rev string) (string, error) {
	out, err := r.output(ctx, "rev-parse", "--verify", rev+"^{commit}")
	if err != nil {
		return "", &ObjectNotFoundError{Kind: "commit", Object: rev, Err: err}
	}
	return out, nil
}

// TagHash returns the commit a tag points to. Annotated tags are peeled.
func (r *Repo) TagHash(ctx context.Context, name string) (string, error) {
	out, err := r.output(ctx, "show-ref", "--tags", "--dereference", name)
	if err != nil {
		return "", &ObjectNotFoundError{Kind: "tag name", Object: name, Err: err}
	}

	// Lines are "<sha> <ref>"; a peeled annotated tag adds "<sha> <ref>^{}".
	var first string
	for line := range strings.Lines(out) {
		sha, ref, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			continue
		}
		if strings.HasSuffix(ref, "^{}") {
			return sha, nil
		}
		if first == "" {
			first = sha
		}
	}
	if first == "" {
		return "", &ObjectNotFoundError{Kind: "tag name", Object: name}
	}
	return first, nil
}

// RemoteURL returns the configured URL of the named remote.
func (r *Repo) RemoteURL(ctx context.Context, name string) (string, error) {
	out, err := r.output(ctx, "config", "--get", fmt.Sprintf("remote.%s.url", name))
	if err != nil {
		return "", &ObjectNotFoundError{Kind: "remote", Object: name, Err: err}
	}
	return out, nil
}

// Remotes lists the configured remote names.
func (r *Repo) Remotes(ctx context.Context) ([]string, error) {
	out, err := r.output(ctx, "remote")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// TrackingRemoteURL returns the URL and name of the remote that branch tracks.
// An empty branch means the current branch. A detached HEAD falls back to origin.
func (r *Repo) TrackingRemoteURL(ctx context.Context, branch string) (url, remote string, err error) {
	out, err := r.output(ctx, "rev-parse", "--abbrev-ref", "--symbolic", branch+"@{u}")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "does not point to a branch") {
			url, err := r.RemoteURL(ctx, "origin")
			if err != nil {
				return "", "", err
			}
			return url, "origin", nil
		}
		return "", "", err
	}

	name, _, ok := strings.Cut(out, "/")
	if !ok {
		return "", "", &UnexpectedRemoteNameError{Name: out}
	}
	url, err = r.RemoteURL(ctx, name)
	if err != nil {
		return "", "", err
	}
	return url, name, nil
}

// RootDir returns the absolute, symlink-resolved repository root.
func (r *Repo) RootDir(ctx context.Context) (string, error) {
	out, err := r.output(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return "", &RootDirNotFoundError{Dir: r.Dir, Stderr: cmdErr.Stderr}
		}
		return "", err
	}
	root, err := filepath.EvalSymlinks(out)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository root %s: %w", out, err)
	}
	return root, nil
}

// CurrentBranch returns the checked out branch name ("HEAD" when detached).
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return r.output(ctx, "rev-parse", "--abbrev-ref", "--symbolic", "HEAD")
}

// RemoteContains reports whether the remote-tracking branch (e.g. "origin/main")
// contains the commit sha.
func (r *Repo) RemoteContains(ctx context.Context, sha, remoteBranch string) (bool, error) {
	out, err := r.output(ctx, "branch", "--remotes", "--list", remoteBranch, "--contains", sha)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// RemoteBranch returns "<remote>/<branch>" for branch on remote.
// An empty remote means the branch's upstream; an empty branch means the
// current branch, which fails with ErrDetachedHead when HEAD is detached.
func (r *Repo) RemoteBranch(ctx context.Context, remote, branch string) (string, error) {
	if remote == "" {
		return r.output(ctx, "rev-parse", "--abbrev-ref", "--symbolic", branch+"@{u}")
	}

	if branch == "" {
		cur, err := r.CurrentBranch(ctx)
		if err != nil {
			return "", err
		}
		if cur == "HEAD" {
			return "", ErrDetachedHead
		}
		branch = cur
	}
	ref := remote + "/" + branch
	if _, err := r.output(ctx, "rev-parse", "--verify", "--quiet", "refs/remotes/"+ref); err != nil {
		return "", &ObjectNotFoundError{Kind: "remote branch", Object: ref, Err: err}
	}
	return ref, nil
}
