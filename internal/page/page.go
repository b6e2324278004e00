package page

import "fmt"

// Page is the resolved target of one invocation. It is one of Open, Diff,
// Commit, Tag, FileOrDir or Issue.
type Page interface {
	isPage()
}

// Open shows the repository (or branch), its homepage, or its pull request.
type Open struct {
	Website     bool
	PullRequest bool
}

// DiffOp is the range operator of a Diff.
type DiffOp int

const (
	TwoDots DiffOp = iota
	ThreeDots
)

func (op DiffOp) String() string {
	if op == ThreeDots {
		return "..."
	}
	return ".."
}

// Diff compares two commits.
type Diff struct {
	LHS string
	RHS string
	Op  DiffOp
}

// Commit shows a single commit.
type Commit struct {
	Hash string
}

// Tag shows a tag. Commit is the commit the tag points to.
type Tag struct {
	Name   string
	Commit string
}

// Line is a single line or an inclusive line range within a file.
type Line struct {
	Start   uint
	End     uint
	IsRange bool
}

// At returns a single-line Line.
func At(n uint) *Line {
	return &Line{Start: n, End: n}
}

// Range returns a line range from a to b.
func Range(a, b uint) *Line {
	return &Line{Start: a, End: b, IsRange: true}
}

func (l Line) String() string {
	if l.IsRange {
		return fmt.Sprintf("L%d-L%d", l.Start, l.End)
	}
	return fmt.Sprintf("L%d", l.Start)
}

// FileOrDir shows a file or directory at a revision.
// RelativePath uses forward slashes and is empty for the repository root.
// Hash is a commit hash, or a branch name when the commit isn't pushed yet;
// IsBranch tells the two apart.
type FileOrDir struct {
	RelativePath string
	Hash         string
	IsBranch     bool
	Line         *Line
	Blame        bool
	IsDir        bool
}

// Issue shows an issue by number.
type Issue struct {
	Number uint64
}

func (Open) isPage()      {}
func (Diff) isPage()      {}
func (Commit) isPage()    {}
func (Tag) isPage()       {}
func (FileOrDir) isPage() {}
func (Issue) isPage()     {}
