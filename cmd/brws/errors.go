package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/brws/internal/page"
	"github.com/raphi011/brws/internal/resolve"
	"github.com/raphi011/brws/internal/ui/styles"
)

// printError writes err to w, downsampling colors to what w supports.
func printError(w io.Writer, err error) {
	cw := &colorprofile.Writer{
		Forward: w,
		Profile: colorprofile.Detect(w, os.Environ()),
	}
	fmt.Fprint(cw, formatError(err))
}

// formatError renders err as a styled headline followed by detail lines.
func formatError(err error) string {
	var b strings.Builder

	var parseErr *page.ParseError
	var remoteErr *resolve.UnknownRemoteError
	switch {
	case errors.As(err, &parseErr):
		headline(&b, fmt.Sprintf("cannot parse command line arguments %q", parseErr.Args))
		b.WriteString(styles.MutedStyle.Render("Attempts:") + "\n")
		for _, a := range parseErr.Attempts {
			fmt.Fprintf(&b, "%s%s: %v\n", styles.Bullet, styles.AccentStyle.Render(a.Name), a.Err)
		}
	case errors.As(err, &remoteErr):
		headline(&b, fmt.Sprintf("remote %q is not configured", remoteErr.Name))
		if len(remoteErr.Suggestions) > 0 {
			b.WriteString(styles.MutedStyle.Render("Did you mean:") + "\n")
			for _, s := range remoteErr.Suggestions {
				b.WriteString(styles.Bullet + styles.AccentStyle.Render(s) + "\n")
			}
		}
	default:
		first, rest, _ := strings.Cut(err.Error(), "\n")
		headline(&b, first)
		if rest != "" {
			b.WriteString(rest + "\n")
		}
	}

	b.WriteString("\n" + styles.MutedStyle.Render("Run 'brws -h' for help") + "\n")
	return b.String()
}

func headline(b *strings.Builder, msg string) {
	b.WriteString(styles.ErrorStyle.Render("Error:") + " " + msg + "\n")
}
