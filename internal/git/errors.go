package git

import (
	"errors"
	"fmt"
	"strings"
)

// CommandError is returned when git exits with a non-zero status.
type CommandError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	if e.Stderr != "" {
		b.WriteString(e.Stderr)
		b.WriteString(": ")
	}
	b.WriteString("`")
	b.WriteString(e.Command)
	for _, a := range e.Args {
		fmt.Fprintf(&b, " '%s'", a)
	}
	b.WriteString("` exited with non-zero status")
	return b.String()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ObjectNotFoundError is returned when a commit, tag or remote can't be resolved.
type ObjectNotFoundError struct {
	// Kind is "commit", "tag name" or "remote".
	Kind   string
	Object string
	Err    error
}

func (e *ObjectNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("git could not find %s '%s'", e.Kind, e.Object)
	}
	return fmt.Sprintf("git could not find %s '%s': %v", e.Kind, e.Object, e.Err)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return e.Err
}

// ErrDetachedHead is returned when a lookup needs the current branch but HEAD
// is detached.
var ErrDetachedHead = errors.New("HEAD is detached: no current branch")

// RootDirNotFoundError is returned when the working directory is not inside a repository.
type RootDirNotFoundError struct {
	Dir    string
	Stderr string
}

func (e *RootDirNotFoundError) Error() string {
	return fmt.Sprintf("cannot locate repository root from %q: %s", e.Dir, e.Stderr)
}

// UnexpectedRemoteNameError is returned when a tracking branch isn't "remote/branch".
type UnexpectedRemoteNameError struct {
	Name string
}

func (e *UnexpectedRemoteNameError) Error() string {
	return fmt.Sprintf("tracking name must be remote/branch: %s", e.Name)
}
