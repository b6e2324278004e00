// Package output writes brws's primary output, the resolved URL, to stdout.
// Diagnostics go to stderr through the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output and knows whether it writes to a terminal.
type Printer struct {
	w   io.Writer
	tty bool
}

// New creates a Printer writing to w. w counts as a terminal when it is an
// *os.File attached to one.
func New(w io.Writer) *Printer {
	return &Printer{w: w, tty: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WithPrinter attaches a Printer for w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// IsTerminal reports whether output goes to a terminal. When it doesn't,
// brws prints URLs instead of opening them.
func (p *Printer) IsTerminal() bool {
	return p.tty
}
