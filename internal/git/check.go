package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com) or set git_command")

// CheckGit verifies that the git executable is available
func CheckGit(command string) error {
	if command == "" {
		command = DefaultCommand
	}
	if _, err := exec.LookPath(command); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideWorkTree returns true if the repo directory is inside a git work tree
func (r *Repo) IsInsideWorkTree(ctx context.Context) bool {
	out, err := r.output(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}
