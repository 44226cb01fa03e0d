package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/crawl"
	"github.com/fwojciec/pagescope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := func() time.Time { return now }

	stored := func(fetchedAt time.Time) *mock.PageService {
		return &mock.PageService{
			FindPageByURLFn: func(_ context.Context, url string) (*pagescope.Page, error) {
				return &pagescope.Page{URL: url, HTML: "<p>cached</p>", FetchedAt: fetchedAt}, nil
			},
		}
	}

	t.Run("serves fresh pages from the cache", func(t *testing.T) {
		t.Parallel()

		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{},
			Pages:   stored(now.Add(-time.Minute)),
			MaxAge:  time.Hour,
			Now:     clock,
		}

		html, err := c.Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "<p>cached</p>", html)
	})

	t.Run("refetches and stores stale pages", func(t *testing.T) {
		t.Parallel()

		var saved *pagescope.Page
		pages := stored(now.Add(-2 * time.Hour))
		pages.SavePageFn = func(_ context.Context, p *pagescope.Page) error {
			saved = p
			return nil
		}
		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "<p>fresh</p>", nil
				},
			},
			Pages:  pages,
			MaxAge: time.Hour,
			Now:    clock,
		}

		html, err := c.Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "<p>fresh</p>", html)
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/", saved.URL)
		assert.Equal(t, "<p>fresh</p>", saved.HTML)
	})

	t.Run("keeps pages forever without a max age", func(t *testing.T) {
		t.Parallel()

		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{},
			Pages:   stored(now.Add(-24 * 365 * time.Hour)),
		}

		html, err := c.Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "<p>cached</p>", html)
	})

	t.Run("fetches pages missing from the cache", func(t *testing.T) {
		t.Parallel()

		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "<p>new</p>", nil
				},
			},
			Pages: &mock.PageService{
				FindPageByURLFn: func(context.Context, string) (*pagescope.Page, error) {
					return nil, pagescope.Errorf(pagescope.ENOTFOUND, "page not found")
				},
				SavePageFn: func(context.Context, *pagescope.Page) error { return nil },
			},
		}

		html, err := c.Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", html)
	})

	t.Run("does not store failed fetches", func(t *testing.T) {
		t.Parallel()

		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("down")
				},
			},
			Pages: &mock.PageService{
				FindPageByURLFn: func(context.Context, string) (*pagescope.Page, error) {
					return nil, pagescope.Errorf(pagescope.ENOTFOUND, "page not found")
				},
			},
		}

		_, err := c.Fetch(context.Background(), "https://example.com/")

		require.EqualError(t, err, "down")
	})

	t.Run("surfaces cache read errors", func(t *testing.T) {
		t.Parallel()

		c := &crawl.CachingFetcher{
			Fetcher: &mock.Fetcher{},
			Pages: &mock.PageService{
				FindPageByURLFn: func(context.Context, string) (*pagescope.Page, error) {
					return nil, errors.New("disk I/O error")
				},
			},
		}

		_, err := c.Fetch(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading page cache")
	})
}

func TestCachingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	c := &crawl.CachingFetcher{
		Fetcher: &mock.Fetcher{CloseFn: func() error { closed = true; return nil }},
	}

	require.NoError(t, c.Close())
	assert.True(t, closed)
}
