package browse

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/brws/internal/config"
	"github.com/raphi011/brws/internal/forge"
	"github.com/raphi011/brws/internal/github"
	"github.com/raphi011/brws/internal/output"
	"github.com/raphi011/brws/internal/resolve"
)

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	c := exec.Command("git", args...)
	c.Dir = dir
	out, err := c.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// setupTestRepo creates a repository whose main branch tracks origin on
// github.com and is fully pushed. Returns the path and HEAD's hash.
func setupTestRepo(t *testing.T) (string, string) {
	t.Helper()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repoPath := filepath.Join(tmpDir, "repo")
	gitOutput(t, tmpDir, "init", "-b", "main", repoPath)

	if err := os.MkdirAll(filepath.Join(repoPath, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{
		"README.md":   "# test\n\nline three\n",
		"src/main.go": "package main\n",
	} {
		if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"config", "tag.gpgsign", "false"},
		{"add", "."},
		{"commit", "-m", "initial"},
		{"tag", "v1.0"},
		{"remote", "add", "origin", "git@github.com:user/repo.git"},
		{"update-ref", "refs/remotes/origin/main", "HEAD"},
		{"config", "branch.main.remote", "origin"},
		{"config", "branch.main.merge", "refs/heads/main"},
	} {
		gitOutput(t, repoPath, args...)
	}
	return repoPath, gitOutput(t, repoPath, "rev-parse", "HEAD")
}

func resolveRequest(t *testing.T, flags resolve.Flags, args []string, cfg config.Config) *resolve.Request {
	t.Helper()
	req, err := resolve.Resolve(context.Background(), flags, args, resolve.Options{Configs: config.NewResolver(cfg)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return req
}

func TestURL(t *testing.T) {
	t.Parallel()

	repoPath, head := setupTestRepo(t)
	const base = "https://github.com/user/repo"

	tests := []struct {
		name  string
		flags resolve.Flags
		args  []string
		short bool
		want  string
	}{
		{name: "open", want: base},
		{name: "open branch", flags: resolve.Flags{Branch: "main"}, want: base + "/tree/main"},
		{name: "file with lines", args: []string{"README.md#L1-L2"}, want: base + "/blob/" + head + "/README.md#L1-L2"},
		{name: "directory", args: []string{"src"}, want: base + "/tree/" + head + "/src"},
		{name: "blame", flags: resolve.Flags{Blame: true}, args: []string{"src/main.go"}, want: base + "/blame/" + head + "/src/main.go"},
		{name: "issue", args: []string{"#3"}, want: base + "/issues/3"},
		{name: "commit", args: []string{"HEAD"}, want: base + "/commit/" + head},
		{name: "short commit", args: []string{"HEAD"}, short: true, want: base + "/commit/" + head[:7]},
		{name: "diff", args: []string{"HEAD...HEAD"}, want: base + "/compare/" + head + "..." + head},
		{name: "tag", args: []string{"v1.0"}, want: base + "/tree/v1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := tt.flags
			flags.Dir = repoPath
			cfg := config.Default()
			cfg.ShortCommitHash = tt.short

			got, err := URL(context.Background(), resolveRequest(t, flags, tt.args, cfg), Options{})
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURL_UnpushedCommitLinksBranch(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepo(t)
	if err := os.WriteFile(filepath.Join(repoPath, "NEW.md"), []byte("new\n"), 0644); err != nil {
		t.Fatal(err)
	}
	gitOutput(t, repoPath, "add", "NEW.md")
	gitOutput(t, repoPath, "commit", "-m", "unpushed")

	req := resolveRequest(t, resolve.Flags{Dir: repoPath}, []string{"NEW.md"}, config.Default())
	got, err := URL(context.Background(), req, Options{})
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if want := "https://github.com/user/repo/blob/main/NEW.md"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURL_DetachedHeadKeepsHash(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepo(t)
	// clones carry origin/HEAD, which must not stand in for the current branch
	gitOutput(t, repoPath, "symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/main")
	if err := os.WriteFile(filepath.Join(repoPath, "NEW.md"), []byte("new\n"), 0644); err != nil {
		t.Fatal(err)
	}
	gitOutput(t, repoPath, "add", "NEW.md")
	gitOutput(t, repoPath, "commit", "-m", "unpushed")
	gitOutput(t, repoPath, "checkout", "--detach")
	head := gitOutput(t, repoPath, "rev-parse", "HEAD")

	req := resolveRequest(t, resolve.Flags{Dir: repoPath, Remote: "origin"}, []string{"NEW.md"}, config.Default())
	got, err := URL(context.Background(), req, Options{})
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if want := "https://github.com/user/repo/blob/" + head + "/NEW.md"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

type fakeAPI struct {
	prURL string
}

func (f *fakeAPI) FindPRURL(_ context.Context, branch, _, _, _ string) (string, error) {
	if branch != "main" {
		return "", errors.New("unexpected branch " + branch)
	}
	return f.prURL, nil
}

func (f *fakeAPI) Repo(context.Context, string, string) (*github.Repo, error) {
	return &github.Repo{DefaultBranch: "main"}, nil
}

func (f *fakeAPI) RepoHomepage(context.Context, string, string) (string, error) {
	return "", nil
}

func TestURL_PullRequestUsesCurrentBranch(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepo(t)
	api := &fakeAPI{prURL: "https://github.com/user/repo/pull/9"}
	opts := Options{NewAPI: func(string, string) (forge.API, error) { return api, nil }}

	req := resolveRequest(t, resolve.Flags{Dir: repoPath, PullRequest: true}, nil, config.Default())
	got, err := URL(context.Background(), req, opts)
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if got != api.prURL {
		t.Errorf("URL() = %q, want %q", got, api.prURL)
	}
}

func TestURL_RepoFlagOutsideRepository(t *testing.T) {
	t.Parallel()

	outside, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	req := resolveRequest(t, resolve.Flags{Dir: outside, Repo: "gitlab.com/user/repo"}, []string{"#5"}, config.Default())
	got, err := URL(context.Background(), req, Options{})
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}
	if want := "https://gitlab.com/user/repo/issues/5"; got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}

	req = resolveRequest(t, resolve.Flags{Dir: outside, Repo: "user/repo", PullRequest: true}, nil, config.Default())
	_, err = URL(context.Background(), req, Options{NewAPI: func(string, string) (forge.API, error) { return &fakeAPI{}, nil }})
	var noRepo *forge.NoLocalRepoFoundError
	if !errors.As(err, &noRepo) {
		t.Errorf("URL() error = %v, want NoLocalRepoFoundError", err)
	}
}

// writeScript creates an executable shell script in a temp directory.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "open.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_BrowseCommand(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "opened")
	script := writeScript(t, `printf '%s' "$1" > "`+target+`"`+"\n")

	const u = "https://github.com/user/repo"
	if err := Open(context.Background(), u, script); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != u {
		t.Errorf("browse command got %q, want %q", got, u)
	}
}

func TestOpen_BrowseCommandFailure(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "echo 'no display' >&2\nexit 3\n")

	err := Open(context.Background(), "https://github.com/user/repo", script)
	var openErr *OpenURLError
	if !errors.As(err, &openErr) {
		t.Fatalf("Open() error = %v, want OpenURLError", err)
	}
	if !strings.Contains(err.Error(), "no display") {
		t.Errorf("Open() error = %q, want stderr included", err)
	}
}

func TestDeliver(t *testing.T) {
	const u = "https://github.com/user/repo"

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	// A buffer is not a terminal, so the URL is printed even without --url.
	if err := Deliver(ctx, u, &resolve.Request{Copy: true}); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if copied != u {
		t.Errorf("clipboard = %q, want %q", copied, u)
	}
	if got := buf.String(); got != u+"\n" {
		t.Errorf("printed %q, want %q", got, u+"\n")
	}
}

func TestDeliver_ClipboardFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { writeClipboard = orig })

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)
	err := Deliver(ctx, "https://github.com/user/repo", &resolve.Request{Copy: true, Stdout: true})
	if err == nil || !strings.Contains(err.Error(), "no clipboard utility") {
		t.Errorf("Deliver() error = %v, want clipboard failure", err)
	}
	if buf.Len() != 0 {
		t.Errorf("printed %q after clipboard failure", buf.String())
	}
}
