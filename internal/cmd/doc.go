// Package cmd runs external programs (git, the configured browse command)
// and turns their failures into errors carrying stderr.
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "rev-parse", "HEAD")
//	if err != nil {
//	    // err.Error() is git's stderr when it printed any
//	    return fmt.Errorf("git failed: %w", err)
//	}
//
// Every call takes a context and is traced through the context logger in
// verbose mode as "[dir] $ name args (duration)".
//
// brws shells out to git rather than using a Go git library so that the
// user's git setup (config, aliases, credential helpers) applies.
package cmd
