package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.w != &buf {
			t.Error("printer should write to the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.w != os.Stdout {
			t.Error("printer should default to os.Stdout")
		}
	})
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Println("https://github.com/user/repo")
	p.Println("https://github.com/user/repo/issues/1")
	want := "https://github.com/user/repo\nhttps://github.com/user/repo/issues/1\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_IsTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if New(&buf).IsTerminal() {
		t.Error("IsTerminal() = true for a buffer")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if New(f).IsTerminal() {
		t.Error("IsTerminal() = true for a regular file")
	}
}
