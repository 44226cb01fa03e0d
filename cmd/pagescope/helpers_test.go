package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/pagescope/cmd/pagescope"
	"github.com/fwojciec/pagescope/goquery"
	"github.com/stretchr/testify/require"
)

const docPage = `<html><head><title>Guide</title></head><body>
<nav><a href="/home">Home</a></nav>
<article>
  <h1>Intro</h1>
  <p>Pagescope reads pages.</p>
  <a href="#setup">Jump</a>
  <h2>Setup</h2>
  <p>Install the binary first, then run it.</p>
  <img src="/img/arch.png" alt="Architecture">
  <a href="/docs/install">Install guide</a>
</article>
</body></html>`

// newDeps returns dependencies writing to buffers and parsing with the
// real goquery parser.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Parser: goquery.NewParser(),
	}, stdout, stderr
}

// writePage writes html to a temporary file and returns its path.
func writePage(t *testing.T, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))
	return path
}
