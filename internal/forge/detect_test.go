package forge

import (
	"context"
	"errors"
	"testing"

	"github.com/raphi011/brws/internal/page"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		opts     Options
		wantName string
		wantURL  string
	}{
		{
			name:     "github.com HTTPS",
			url:      "https://github.com/user/repo.git",
			wantName: "GitHub",
			wantURL:  "https://github.com/user/repo",
		},
		{
			name:     "github.com SSH ignores port",
			url:      "ssh://git@github.com:22/user/repo.git",
			wantName: "GitHub",
			wantURL:  "https://github.com/user/repo",
		},
		{
			name:     "github.com mixed case host",
			url:      "https://GitHub.com/user/repo.git",
			wantName: "GitHub",
			wantURL:  "https://github.com/user/repo",
		},
		{
			name:     "configured GHE host in upper case",
			url:      "https://CODE.example.com/user/repo.git",
			opts:     Options{GHEURLHost: "code.example.com"},
			wantName: "GitHub Enterprise",
			wantURL:  "https://code.example.com/user/repo",
		},
		{
			name:     "github.com without .git",
			url:      "https://github.com/user/repo",
			wantName: "GitHub",
			wantURL:  "https://github.com/user/repo",
		},
		{
			name:     "github.com with branch",
			url:      "https://github.com/user/repo.git",
			opts:     Options{Branch: "dev"},
			wantName: "GitHub",
			wantURL:  "https://github.com/user/repo/tree/dev",
		},
		{
			name:     "GHE by prefix",
			url:      "https://github.somewhere.com/user/repo.git",
			wantName: "GitHub Enterprise",
			wantURL:  "https://github.somewhere.com/user/repo",
		},
		{
			name:     "GHE with SSH port",
			url:      "ssh://git@github.somewhere.com:22/user/repo.git",
			opts:     Options{GHESSHPort: 10022},
			wantName: "GitHub Enterprise",
			wantURL:  "https://github.somewhere.com:10022/user/repo",
		},
		{
			name:     "GHE by configured host",
			url:      "https://my-original-ghe.org/user/repo.git",
			opts:     Options{GHEURLHost: "my-original-ghe.org"},
			wantName: "GitHub Enterprise",
			wantURL:  "https://my-original-ghe.org/user/repo",
		},
		{
			name:     "gitlab.com",
			url:      "https://gitlab.com/user/repo.git",
			wantName: "GitLab",
			wantURL:  "https://gitlab.com/user/repo",
		},
		{
			name:     "GitLab by prefix",
			url:      "https://gitlab.example.com/user/repo.git",
			wantName: "GitLab",
			wantURL:  "https://gitlab.example.com/user/repo",
		},
		{
			name:     "GitLab by configured host with port",
			url:      "ssh://git@git.example.com:22/user/repo.git",
			opts:     Options{GitLabURLHost: "git.example.com", GitLabSSHPort: 8022},
			wantName: "GitLab",
			wantURL:  "https://git.example.com:8022/user/repo",
		},
		{
			name:     "bitbucket.org",
			url:      "https://bitbucket.org/user/repo.git",
			wantName: "Bitbucket",
			wantURL:  "https://bitbucket.org/user/repo",
		},
		{
			name:     "Bitbucket with branch",
			url:      "https://bitbucket.org/user/repo.git",
			opts:     Options{Branch: "dev"},
			wantName: "Bitbucket",
			wantURL:  "https://bitbucket.org/user/repo/branch/dev",
		},
		{
			name:     "Azure DevOps HTTPS",
			url:      "https://org@dev.azure.com/org/project/_git/repo",
			wantName: "Azure DevOps",
			wantURL:  "https://dev.azure.com/org/project/_git/repo",
		},
		{
			name:     "Azure DevOps SSH",
			url:      "ssh://git@ssh.dev.azure.com:22/v3/org/project/repo",
			wantName: "Azure DevOps",
			wantURL:  "https://dev.azure.com/org/project/_git/repo",
		},
		{
			name:     "Azure DevOps without project",
			url:      "https://dev.azure.com/org/_git/repo",
			wantName: "Azure DevOps",
			wantURL:  "https://dev.azure.com/org/_git/repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Route(tt.url, tt.opts)
			if err != nil {
				t.Fatalf("Route(%q) error = %v", tt.url, err)
			}
			if f.Name() != tt.wantName {
				t.Errorf("Route(%q).Name() = %q, want %q", tt.url, f.Name(), tt.wantName)
			}
			got, err := f.Render(context.Background(), page.Open{})
			if err != nil {
				t.Fatalf("Render(Open) error = %v", err)
			}
			if got != tt.wantURL {
				t.Errorf("Render(Open) = %q, want %q", got, tt.wantURL)
			}
		})
	}
}

func TestRoute_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		url   string
		check func(error) bool
	}{
		{
			name:  "unknown host",
			url:   "https://github-othercompany.com/foo/bar.git",
			check: func(err error) bool { var e *UnknownHostingServiceError; return errors.As(err, &e) },
		},
		{
			name:  "no host",
			url:   "https://foo@/foo.bar",
			check: func(err error) bool { var e *BrokenURLError; return errors.As(err, &e) },
		},
		{
			name:  "space in host",
			url:   "https://foo bar",
			check: func(err error) bool { var e *BrokenURLError; return errors.As(err, &e) },
		},
		{
			name:  "no user",
			url:   "https://github.com/",
			check: func(err error) bool { var e *NoUserInPathError; return errors.As(err, &e) },
		},
		{
			name:  "no repo",
			url:   "https://github.com/user",
			check: func(err error) bool { var e *NoRepoInPathError; return errors.As(err, &e) },
		},
		{
			name:  "Azure without repo",
			url:   "https://dev.azure.com/org/project/_git",
			check: func(err error) bool { var e *NoRepoInPathError; return errors.As(err, &e) },
		},
		{
			name:  "Azure without organization",
			url:   "https://dev.azure.com/_git/repo",
			check: func(err error) bool { var e *NoUserInPathError; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Route(tt.url, Options{})
			if err == nil {
				t.Fatalf("Route(%q) = %s, want error", tt.url, f.Name())
			}
			if !tt.check(err) {
				t.Errorf("Route(%q) error = %T %v", tt.url, err, err)
			}
		})
	}
}

func TestAzureSlugFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path          string
		wantTeam      string
		wantRepo      string
		wantWorkItems string
	}{
		{"/org/project/_git/repo", "org/project", "repo", "project"},
		{"/org/_git/repo", "org", "repo", "repo"},
		{"/org/_git/repo.git", "org", "repo", "repo"},
		{"v3/org/project/repo", "org/project", "repo", "project"},
		{"/DefaultCollection/project/_git/repo", "DefaultCollection/project", "repo", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			slug, err := azureSlugFromPath(tt.path)
			if err != nil {
				t.Fatalf("azureSlugFromPath(%q) error = %v", tt.path, err)
			}
			if got := slug.Team(); got != tt.wantTeam {
				t.Errorf("Team() = %q, want %q", got, tt.wantTeam)
			}
			if slug.Repo != tt.wantRepo {
				t.Errorf("Repo = %q, want %q", slug.Repo, tt.wantRepo)
			}
			if got := slug.WorkItemsProject(); got != tt.wantWorkItems {
				t.Errorf("WorkItemsProject() = %q, want %q", got, tt.wantWorkItems)
			}
		})
	}
}
