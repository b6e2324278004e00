package browse

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/raphi011/brws/internal/cmd"
	"github.com/raphi011/brws/internal/forge"
	"github.com/raphi011/brws/internal/log"
	"github.com/raphi011/brws/internal/output"
	"github.com/raphi011/brws/internal/page"
	"github.com/raphi011/brws/internal/resolve"
)

// Options replaces network access for tests. Zero values use the real
// GitHub API and HEAD probing.
type Options struct {
	NewAPI func(baseURL, token string) (forge.API, error)
	Probe  forge.Prober
}

// Clipboard and system browser access, replaced in tests.
var (
	writeClipboard = clipboard.WriteAll
	openBrowser    = browser.OpenURL
)

func init() {
	// xdg-open and friends write to stdout, which may carry the URL.
	browser.Stdout = os.Stderr
}

// URL returns the URL of the page req describes.
func URL(ctx context.Context, req *resolve.Request, opts Options) (string, error) {
	parser := &page.Parser{
		Git:         req.Git,
		Cwd:         req.Dir,
		Branch:      req.Branch,
		Remote:      req.Remote,
		Website:     req.Website,
		PullRequest: req.PullRequest,
		Blame:       req.Blame,
		ShortHash:   req.Config.ShortCommitHash,
	}
	pg, err := parser.Parse(ctx, req.Args)
	if err != nil {
		return "", err
	}

	cfg := req.Config
	fopts := forge.Options{
		Branch:        req.Branch,
		GHEURLHost:    cfg.GHEURLHost,
		GHESSHPort:    cfg.GHESSHPort,
		GitLabURLHost: cfg.GitLabURLHost,
		GitLabSSHPort: cfg.GitLabSSHPort,
		GitHubToken:   cfg.GitHubToken,
		GHEToken:      cfg.GHEToken,
		HTTPSProxy:    cfg.HTTPSProxy,
		NewAPI:        opts.NewAPI,
		Probe:         opts.Probe,
	}
	if req.LocalRepo {
		fopts.CurrentBranch = req.Git.CurrentBranch
	}

	f, err := forge.Route(req.RepoURL, fopts)
	if err != nil {
		return "", err
	}
	log.FromContext(ctx).Debug("rendering page", "service", f.Name(), "page", fmt.Sprintf("%T", pg))
	return f.Render(ctx, pg)
}

// Open opens u with browseCommand, or the system browser when it is empty.
func Open(ctx context.Context, u, browseCommand string) error {
	var err error
	if browseCommand != "" {
		err = cmd.RunContext(ctx, "", browseCommand, u)
	} else {
		err = openBrowser(u)
	}
	if err != nil {
		return &OpenURLError{URL: u, Err: err}
	}
	return nil
}

// Deliver copies u to the clipboard when req asks for it, then prints u with
// --url or when stdout isn't a terminal, and opens it otherwise.
func Deliver(ctx context.Context, u string, req *resolve.Request) error {
	if req.Copy {
		if err := writeClipboard(u); err != nil {
			return fmt.Errorf("failed to copy URL to clipboard: %w", err)
		}
		log.FromContext(ctx).Printf("Copied %s to clipboard\n", u)
	}

	out := output.FromContext(ctx)
	if req.Stdout || !out.IsTerminal() {
		out.Println(u)
		return nil
	}
	return Open(ctx, u, req.Config.BrowseCommand)
}
