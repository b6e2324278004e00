package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/raphi011/brws/internal/log"
)

// Git is the subset of git queries the parser needs.
type Git interface {
	Hash(ctx context.Context, rev string) (string, error)
	TagHash(ctx context.Context, name string) (string, error)
	RootDir(ctx context.Context) (string, error)
	RemoteBranch(ctx context.Context, remote, branch string) (string, error)
	RemoteContains(ctx context.Context, sha, remoteBranch string) (bool, error)
}

// ShortHashLen is the length of hashes in short-hash mode.
const ShortHashLen = 7

// Parser maps command line arguments to a Page.
type Parser struct {
	Git Git
	// Cwd is the directory relative paths are resolved against.
	Cwd string
	// Branch and Remote select the remote-tracking branch used to check
	// whether a file's commit has been pushed.
	Branch string
	Remote string

	Website     bool
	PullRequest bool
	Blame       bool
	ShortHash   bool
}

var (
	issueRe = regexp.MustCompile(`^#(\d+)$`)
	lineRe  = regexp.MustCompile(`^L?(\d+)(?:-L?(\d+))?$`)
)

type attemptFunc func(ctx context.Context, args []string) (Page, error)

// Parse interprets args as, in order, an issue number, a file or directory,
// a diff, a tag and a commit. The first interpretation that succeeds wins.
// When all fail the returned *ParseError lists every failure.
func (p *Parser) Parse(ctx context.Context, args []string) (Page, error) {
	if p.Website || p.PullRequest || len(args) == 0 {
		if p.Blame {
			return nil, ErrBlameWithoutFilePath
		}
		return Open{Website: p.Website, PullRequest: p.PullRequest}, nil
	}

	attempts := []struct {
		name string
		fn   attemptFunc
		file bool
	}{
		{"issue number", p.parseIssue, false},
		{"file or directory", p.parseFileOrDir, true},
		{"diff", p.parseDiff, false},
		{"tag", p.parseTag, false},
		{"commit", p.parseCommit, false},
	}

	logger := log.FromContext(ctx)
	failed := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		if p.Blame && !a.file {
			failed = append(failed, Attempt{Name: a.name, Err: ErrBlameWithoutFilePath})
			continue
		}
		pg, err := a.fn(ctx, args)
		if err == nil {
			logger.Debug("parsed arguments", "as", a.name)
			return pg, nil
		}
		logger.Debug("argument interpretation failed", "as", a.name, "err", err)
		failed = append(failed, Attempt{Name: a.name, Err: err})
	}
	return nil, &ParseError{Args: args, Attempts: failed}
}

func (p *Parser) shorten(sha string) string {
	if p.ShortHash && len(sha) > ShortHashLen {
		return sha[:ShortHashLen]
	}
	return sha
}

func (p *Parser) hash(ctx context.Context, rev string) (string, error) {
	sha, err := p.Git.Hash(ctx, rev)
	if err != nil {
		return "", err
	}
	return p.shorten(sha), nil
}

func exactlyOne(args []string, kind string) (string, error) {
	if len(args) != 1 {
		return "", &WrongNumberOfArgsError{Expected: "1", Actual: len(args), Kind: kind}
	}
	return args[0], nil
}

func (p *Parser) parseIssue(_ context.Context, args []string) (Page, error) {
	arg, err := exactlyOne(args, "issue number")
	if err != nil {
		return nil, err
	}
	m := issueRe.FindStringSubmatch(arg)
	if m == nil {
		return nil, ErrInvalidIssueNumberFormat
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid issue number %s: %w", arg, err)
	}
	return Issue{Number: n}, nil
}

// splitLineSuffix splits "path#L1-L2" into path and line. A '#' suffix that
// isn't a line number or range is kept as part of the path.
func splitLineSuffix(arg string) (string, *Line) {
	i := strings.LastIndexByte(arg, '#')
	if i < 0 {
		return arg, nil
	}
	m := lineRe.FindStringSubmatch(arg[i+1:])
	if m == nil {
		return arg, nil
	}
	start, err := strconv.ParseUint(m[1], 10, 0)
	if err != nil {
		return arg, nil
	}
	if m[2] == "" {
		return arg[:i], At(uint(start))
	}
	end, err := strconv.ParseUint(m[2], 10, 0)
	if err != nil {
		return arg, nil
	}
	return arg[:i], Range(uint(start), uint(end))
}

func (p *Parser) parseFileOrDir(ctx context.Context, args []string) (Page, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, &WrongNumberOfArgsError{Expected: "1..2", Actual: len(args), Kind: "file or directory"}
	}

	path, line := splitLineSuffix(args[0])
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Cwd, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, err
	}

	root, err := p.Git.RootDir(ctx)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, &FileDirNotInRepoError{RepoRoot: root, Path: abs}
	}
	if rel == "." {
		rel = ""
	}

	isDir := info.IsDir()
	if isDir && line != nil {
		return nil, &LineSpecifiedForDirError{Path: abs}
	}
	if isDir && p.Blame {
		return nil, &CannotBlameDirectoryError{Path: abs}
	}

	rev := "HEAD"
	if len(args) == 2 {
		rev = args[1]
	}
	sha, err := p.Git.Hash(ctx, rev)
	if err != nil {
		return nil, err
	}

	rev, isBranch := p.pushedRevision(ctx, sha)
	return FileOrDir{
		RelativePath: filepath.ToSlash(rel),
		Hash:         rev,
		IsBranch:     isBranch,
		Line:         line,
		Blame:        p.Blame,
		IsDir:        isDir,
	}, nil
}

// pushedRevision returns sha when the remote-tracking branch contains it, and
// the branch name otherwise so the link doesn't point to a commit the remote
// doesn't have. A failed tracking lookup, including a detached HEAD, keeps sha.
func (p *Parser) pushedRevision(ctx context.Context, sha string) (rev string, isBranch bool) {
	remoteBranch, err := p.Git.RemoteBranch(ctx, p.Remote, p.Branch)
	if err != nil {
		log.FromContext(ctx).Debug("remote branch lookup failed", "err", err)
		return p.shorten(sha), false
	}
	pushed, err := p.Git.RemoteContains(ctx, sha, remoteBranch)
	if err != nil || pushed {
		return p.shorten(sha), false
	}

	branch := p.Branch
	if branch == "" {
		_, branch, _ = strings.Cut(remoteBranch, "/")
	}
	log.FromContext(ctx).Debug("commit not on remote, linking branch instead", "sha", sha, "branch", branch)
	return branch, true
}

func (p *Parser) parseDiff(ctx context.Context, args []string) (Page, error) {
	arg, err := exactlyOne(args, "diff")
	if err != nil {
		return nil, err
	}

	var lhs, rhs string
	var op DiffOp
	if l, r, ok := strings.Cut(arg, "..."); ok {
		lhs, rhs, op = l, r, ThreeDots
	} else if l, r, ok := strings.Cut(arg, ".."); ok {
		lhs, rhs, op = l, r, TwoDots
	} else {
		return nil, ErrDiffDotsNotFound
	}
	if lhs == "" || rhs == "" {
		return nil, &DiffHandIsEmptyError{Input: arg}
	}

	lsha, err := p.hash(ctx, lhs)
	if err != nil {
		return nil, err
	}
	rsha, err := p.hash(ctx, rhs)
	if err != nil {
		return nil, err
	}
	return Diff{LHS: lsha, RHS: rsha, Op: op}, nil
}

func (p *Parser) parseTag(ctx context.Context, args []string) (Page, error) {
	name, err := exactlyOne(args, "tag")
	if err != nil {
		return nil, err
	}
	sha, err := p.Git.TagHash(ctx, name)
	if err != nil {
		return nil, err
	}
	return Tag{Name: name, Commit: p.shorten(sha)}, nil
}

func (p *Parser) parseCommit(ctx context.Context, args []string) (Page, error) {
	rev, err := exactlyOne(args, "commit")
	if err != nil {
		return nil, err
	}
	sha, err := p.hash(ctx, rev)
	if err != nil {
		return nil, err
	}
	return Commit{Hash: sha}, nil
}
