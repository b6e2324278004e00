package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/brws/internal/config"
	"github.com/raphi011/brws/internal/git"
	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/log"
)

// Flags are the command line options that shape a Request.
type Flags struct {
	Repo   string
	Branch string
	Dir    string
	Remote string

	Stdout      bool
	PullRequest bool
	Website     bool
	Blame       bool
	Copy        bool
}

// Request is everything needed to compute and deliver one URL.
type Request struct {
	// RepoURL is the repository URL with SCP-like SSH URLs converted.
	RepoURL string
	Branch  string
	// Remote is the remote RepoURL came from, empty when it didn't come
	// from a remote.
	Remote string
	// Dir is the directory arguments are resolved against.
	Dir  string
	Args []string

	Stdout      bool
	PullRequest bool
	Website     bool
	Blame       bool
	Copy        bool

	Config config.Config
	// Git runs in Dir. Its queries fail when Dir is not in a repository.
	Git *git.Repo
	// LocalRepo reports whether Dir is inside a git repository.
	LocalRepo bool
}

// Options are the dependencies of Resolve.
type Options struct {
	// Configs merges per-repository configuration. Nil means the context's resolver.
	Configs *config.Resolver
	// NewSearcher builds the repository search client. Nil means the GitHub API.
	NewSearcher func(cfg config.Config) (Searcher, error)
}

func (o Options) searcher(cfg config.Config) (Searcher, error) {
	if o.NewSearcher != nil {
		return o.NewSearcher(cfg)
	}
	return github.NewClient(github.DefaultBaseURL, cfg.GitHubToken, cfg.HTTPSProxy)
}

// ValidateFlags rejects flag combinations that can't produce a single page.
func ValidateFlags(f Flags, args []string) error {
	if f.PullRequest && f.Website {
		return ErrPullRequestAndWebsite
	}
	if len(args) == 0 {
		return nil
	}
	if f.PullRequest {
		return &ArgsNotAllowedError{Flag: "--pr", Args: args}
	}
	if f.Website {
		return &ArgsNotAllowedError{Flag: "--website", Args: args}
	}
	return nil
}

// Resolve builds the Request for f and args.
func Resolve(ctx context.Context, f Flags, args []string, opts Options) (*Request, error) {
	if err := ValidateFlags(f, args); err != nil {
		return nil, err
	}

	dir, err := workDir(f.Dir)
	if err != nil {
		return nil, err
	}

	configs := opts.Configs
	if configs == nil {
		configs = config.ResolverFromContext(ctx)
	}
	cfg := configs.Global()

	if err := git.CheckGit(cfg.GitCommand); err != nil {
		return nil, err
	}
	g := git.New(cfg.GitCommand, dir)

	logger := log.FromContext(ctx)
	local := g.IsInsideWorkTree(ctx)
	if local {
		root, err := g.RootDir(ctx)
		if err != nil {
			return nil, err
		}
		if cfg, err = configs.ForRepo(root); err != nil {
			return nil, err
		}
	} else {
		logger.Debug("not inside a repository", "dir", dir)
	}

	req := &Request{
		Branch:      f.Branch,
		Dir:         dir,
		Args:        args,
		Stdout:      f.Stdout,
		PullRequest: f.PullRequest,
		Website:     f.Website,
		Blame:       f.Blame,
		Copy:        f.Copy,
		Config:      cfg,
		Git:         g,
		LocalRepo:   local,
	}

	switch {
	case f.Repo != "":
		var remotes Git
		if local {
			remotes = g
		}
		req.RepoURL, err = normalizeRepo(ctx, f.Repo, remotes, func() (Searcher, error) {
			return opts.searcher(cfg)
		})
	case !local:
		// Without a repository there is nothing to take the URL from.
		return nil, notInRepo(ctx, g)
	case f.Remote != "":
		req.Remote = f.Remote
		req.RepoURL, err = remoteURL(ctx, g, f.Remote)
	default:
		req.RepoURL, req.Remote, err = g.TrackingRemoteURL(ctx, f.Branch)
	}
	if err != nil {
		return nil, err
	}

	req.RepoURL = ConvertSSHURL(req.RepoURL)
	logger.Debug("resolved repository", "url", req.RepoURL, "remote", req.Remote, "dir", dir)
	return req, nil
}

// notInRepo returns the error RootDir reports for g's directory.
func notInRepo(ctx context.Context, g *git.Repo) error {
	if _, err := g.RootDir(ctx); err != nil {
		return err
	}
	return &git.RootDirNotFoundError{Dir: g.Dir, Stderr: "not inside a work tree"}
}

// workDir returns the absolute directory to run in. An explicit dir must exist.
func workDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid directory %s: not a directory", dir)
	}
	return abs, nil
}
