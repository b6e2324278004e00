package git

import (
	"context"
	"errors"
	"strings"

	"github.com/raphi011/brws/internal/cmd"
)

// DefaultCommand is the git executable used when none is configured.
const DefaultCommand = "git"

// Repo runs git commands against a working directory.
type Repo struct {
	// Dir is passed to git as -C <dir>. Empty means the process cwd.
	Dir string
	// Command is the git executable.
	Command string
}

// New returns a Repo for dir using the given git executable.
func New(command, dir string) *Repo {
	if command == "" {
		command = DefaultCommand
	}
	return &Repo{Dir: dir, Command: command}
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// output executes git and returns trimmed stdout. Failures are reported as
// *CommandError carrying git's stderr.
func (r *Repo) output(ctx context.Context, args ...string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", r.Command, gitArgs(r.Dir, args)...)
	if err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Command: r.Command,
				Args:    args,
				Stderr:  strings.ReplaceAll(exitErr.Stderr, "\n", " "),
				Err:     exitErr.Err,
			}
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
