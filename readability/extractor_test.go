package readability_test

import (
	"testing"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Configuration</h1>
<p>This is the main article content that should be preserved in the output. It explains every option.</p>
<p>See the <a href="reference/">reference</a> for details, including defaults and environment variables.</p>
<img src="diagram.png" alt="Architecture">
</article>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
	})

	t.Run("extracts title and content", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.Equal(t, "Page Title", result.Title)
		assert.Contains(t, result.ContentHTML, "main article content")
		assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	})
}
