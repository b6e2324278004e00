package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPullRequestAndWebsite is returned when --pr and --website are combined.
var ErrPullRequestAndWebsite = errors.New("--pr and --website cannot be used together")

// BrokenRepoFormatError is returned for --repo values that are not a remote,
// a URL or a user/repo shorthand.
type BrokenRepoFormatError struct {
	Input string
}

func (e *BrokenRepoFormatError) Error() string {
	return fmt.Sprintf("invalid repository format '%s', expected 'user/repo', 'host/user/repo', a remote name or a git URL", e.Input)
}

// ArgsNotAllowedError is returned when a flag that selects the page is
// combined with positional arguments.
type ArgsNotAllowedError struct {
	Flag string
	Args []string
}

func (e *ArgsNotAllowedError) Error() string {
	return fmt.Sprintf("%s option does not allow any command line argument, but got %q", e.Flag, e.Args)
}

// UnknownRemoteError is returned for --remote names that aren't configured.
type UnknownRemoteError struct {
	Name        string
	Suggestions []string
	Err         error
}

func (e *UnknownRemoteError) Error() string {
	msg := fmt.Sprintf("remote %q is not configured", e.Name)
	if len(e.Suggestions) > 0 {
		msg += "\nDid you mean: " + strings.Join(e.Suggestions, ", ")
	}
	return msg
}

func (e *UnknownRemoteError) Unwrap() error {
	return e.Err
}
