package page

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidIssueNumberFormat is returned when an argument isn't "#<digits>".
	ErrInvalidIssueNumberFormat = errors.New("issue number must start with '#' followed by digits like #123")
	// ErrDiffDotsNotFound is returned when an argument has no ".." or "...".
	ErrDiffDotsNotFound = errors.New("'..' or '...' must be contained for diff")
	// ErrBlameWithoutFilePath is returned when blame is requested without a file.
	ErrBlameWithoutFilePath = errors.New("file path is not given to blame")
)

// WrongNumberOfArgsError is returned when an interpretation needs a different argument count.
type WrongNumberOfArgsError struct {
	Expected string
	Actual   int
	Kind     string
}

func (e *WrongNumberOfArgsError) Error() string {
	return fmt.Sprintf("invalid number of arguments for %s: %s expected but %d given", e.Kind, e.Expected, e.Actual)
}

// DiffHandIsEmptyError is returned for "a.." or "...b".
type DiffHandIsEmptyError struct {
	Input string
}

func (e *DiffHandIsEmptyError) Error() string {
	return fmt.Sprintf("not a diff since LHS and/or RHS is empty: %s", e.Input)
}

// FileDirNotInRepoError is returned when a path resolves outside the repository.
type FileDirNotInRepoError struct {
	RepoRoot string
	Path     string
}

func (e *FileDirNotInRepoError) Error() string {
	return fmt.Sprintf("given path %q is not in repository %q", e.Path, e.RepoRoot)
}

// LineSpecifiedForDirError is returned for a directory with a line suffix.
type LineSpecifiedForDirError struct {
	Path string
}

func (e *LineSpecifiedForDirError) Error() string {
	return fmt.Sprintf("directory cannot have line number: %s", e.Path)
}

// CannotBlameDirectoryError is returned when blame is requested for a directory.
type CannotBlameDirectoryError struct {
	Path string
}

func (e *CannotBlameDirectoryError) Error() string {
	return fmt.Sprintf("cannot blame directory %s, please specify a file path", e.Path)
}

// Attempt records why one interpretation of the arguments failed.
type Attempt struct {
	Name string
	Err  error
}

// ParseError is returned when no interpretation of the arguments succeeded.
// Attempts keeps every failure in the order tried.
type ParseError struct {
	Args     []string
	Attempts []Attempt
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot parse command line arguments %q\nattempts:", e.Args)
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "\n  - %s: %v", a.Name, a.Err)
	}
	return b.String()
}

// Unwrap exposes every attempt's error to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}
