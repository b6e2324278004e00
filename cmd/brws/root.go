package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/brws/internal/browse"
	"github.com/raphi011/brws/internal/config"
	"github.com/raphi011/brws/internal/log"
	"github.com/raphi011/brws/internal/output"
	"github.com/raphi011/brws/internal/resolve"
)

type rootOptions struct {
	flags   resolve.Flags
	verbose bool
	quiet   bool

	initConfig bool
	force      bool
}

const longHelp = `brws opens a repository, file, commit, diff, tag, issue or pull request
in your web browser. GitHub, GitHub Enterprise, GitLab, Bitbucket and
Azure DevOps are supported.

The arguments are interpreted as, in order of preference:

  #123               issue number
  path[#L1-L2]       file or directory, optionally at a revision (2nd argument)
  REV..REV           diff (also REV...REV)
  TAG                tag
  REV                commit

Configuration is read from ~/.config/brws/config.toml and GIT_BRWS_*
environment variables. A repository can override hosts, ports and
short_commit_hash in .brws.toml at its root.`

const examples = `  brws                         # repository page
  brws -b dev                  # dev branch
  brws README.md#L10-L20       # lines 10 to 20 of README.md at HEAD
  brws src v1.0                # src directory at tag v1.0
  brws HEAD~3                  # commit page
  brws main...feature          # diff
  brws '#42'                   # issue 42
  brws --pr                    # pull request of the current branch
  brws -r rust-lang/rust       # another repository
  brws -u --blame main.go      # print the blame URL`

// newRootCmd builds the brws command. cfg is the loaded global configuration.
func newRootCmd(cfg config.Config) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:                        "brws [flags] [target...]",
		Short:                      "Open web pages of a git repository",
		Long:                       longHelp,
		Example:                    examples,
		Version:                    versionString(),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			ctx = config.WithResolver(ctx, config.NewResolver(cfg))
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return runInitConfig(cmd.Context(), opts.force)
			}
			return runBrowse(cmd.Context(), opts.flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.flags.Repo, "repo", "r", "", "Repository: user/repo, host/user/repo, a remote name, a git URL or a name to search on GitHub")
	f.StringVarP(&opts.flags.Branch, "branch", "b", "", "Branch to browse")
	f.StringVarP(&opts.flags.Dir, "dir", "d", "", "Path to the local repository (default: current directory)")
	f.StringVarP(&opts.flags.Remote, "remote", "R", "", "Remote to take the repository URL from")
	f.BoolVarP(&opts.flags.Stdout, "url", "u", false, "Print the URL instead of opening it")
	f.BoolVarP(&opts.flags.PullRequest, "pr", "p", false, "Open the pull request page of the branch")
	f.BoolVarP(&opts.flags.Website, "website", "w", false, "Open the website of the repository")
	f.BoolVar(&opts.flags.Blame, "blame", false, "Open the blame page of a file")
	f.BoolVarP(&opts.flags.Copy, "copy", "c", false, "Copy the URL to the clipboard")
	f.BoolVar(&opts.initConfig, "init-config", false, "Write a default config file and exit")
	f.BoolVar(&opts.force, "force", false, "Overwrite an existing config file (with --init-config)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Show git commands and debug output")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("repo", "remote")

	cmd.SetVersionTemplate("{{.Version}}\n")
	return cmd
}

func runBrowse(ctx context.Context, flags resolve.Flags, args []string) error {
	req, err := resolve.Resolve(ctx, flags, args, resolve.Options{})
	if err != nil {
		return err
	}
	u, err := browse.URL(ctx, req, browse.Options{})
	if err != nil {
		return err
	}
	return browse.Deliver(ctx, u, req)
}

func runInitConfig(ctx context.Context, force bool) error {
	path, err := config.Init(force)
	if err != nil {
		return err
	}
	log.FromContext(ctx).Printf("Created config file: %s\n", path)
	return nil
}

// Execute runs brws and exits with status 1 on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(cfg)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
