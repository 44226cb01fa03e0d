//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = fetcher.Close() })

	t.Run("returns rendered html", func(t *testing.T) {
		t.Parallel()

		srv := serveHTML(t, `<!DOCTYPE html>
<html><head><title>Test Page</title></head>
<body>
<div id="content">Loading...</div>
<script>document.getElementById('content').textContent = 'JavaScript Rendered';</script>
</body></html>`)

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "JavaScript Rendered")
		assert.NotContains(t, html, "Loading...")
		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	})

	t.Run("inlines open shadow roots", func(t *testing.T) {
		t.Parallel()

		// The marker appears twice in the script; inlined shadow content
		// adds two more.
		srv := serveHTML(t, `<!DOCTYPE html>
<html><body>
<nav-menu></nav-menu>
<script>
class NavMenu extends HTMLElement {
  constructor() {
    super();
    const shadow = this.attachShadow({mode: 'open'});
    shadow.innerHTML = '<a href="/one" data-shadow="true">One</a><a href="/two" data-shadow="true">Two</a>';
  }
}
customElements.define('nav-menu', NavMenu);
</script>
</body></html>`)

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Greater(t, strings.Count(html, `data-shadow="true"`), 2)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, "http://example.com")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "http://example.com")

	assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
	assert.Contains(t, pagescope.ErrorMessage(err), "closed")
}
