package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagescope"
	main "github.com/fwojciec/pagescope/cmd/pagescope"
	"github.com/fwojciec/pagescope/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes scope flags and prints each report", func(t *testing.T) {
		t.Parallel()

		var gotOpts pagescope.ReportOptions
		deps, stdout, stderr := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, urls []string, opts pagescope.ReportOptions, progress pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
				gotOpts = opts
				for i, u := range urls {
					progress(pagescope.ScrapeProgress{URL: u, Completed: i + 1, Total: len(urls)})
				}
				return []*pagescope.Report{
					{URL: urls[0], Title: "A"},
					{URL: urls[1], Error: "fetch failed"},
				}, nil
			},
		}
		cmd := &main.ScrapeCmd{URLs: []string{"https://a.example.com/x", "https://b.example.com/y"}}
		cmd.Select = "main"
		cmd.MaxLen = 80

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "main", gotOpts.Selector)
		assert.Equal(t, 80, gotOpts.MaxTextLen)
		assert.Contains(t, stderr.String(), "[2/2] /y")
		assert.Contains(t, stdout.String(), "URL: https://a.example.com/x\nTitle: A\n")
		assert.Contains(t, stdout.String(), "\n---\n")
		assert.Contains(t, stdout.String(), "Error: fetch failed\n")
	})

	t.Run("rejects non-url arguments", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		cmd := &main.ScrapeCmd{URLs: []string{"page.html"}}

		err := cmd.Run(deps)

		assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
	})

	t.Run("discovers pages from sitemaps with filters", func(t *testing.T) {
		t.Parallel()

		var gotFilter *pagescope.URLFilter
		var gotURLs []string
		deps, _, _ := newDeps()
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *pagescope.URLFilter) ([]string, error) {
				gotFilter = filter
				return []string{baseURL + "docs/a", baseURL + "docs/b"}, nil
			},
		}
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, urls []string, _ pagescope.ReportOptions, _ pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
				gotURLs = urls
				return []*pagescope.Report{}, nil
			},
		}
		cmd := &main.ScrapeCmd{
			URLs:    []string{"https://example.com/"},
			Sitemap: true,
			Filter:  []string{"/docs/"},
			Exclude: []string{"/blog/"},
		}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, []string{"https://example.com/docs/a", "https://example.com/docs/b"}, gotURLs)
		require.NotNil(t, gotFilter)
		assert.True(t, gotFilter.Match("https://example.com/docs/x"))
		assert.False(t, gotFilter.Match("https://example.com/blog/docs/x"))
	})

	t.Run("rejects invalid filter patterns", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/"}, Sitemap: true, Filter: []string{"("}}

		err := cmd.Run(deps)

		assert.Equal(t, pagescope.EINVALID, pagescope.ErrorCode(err))
	})

	t.Run("fails when sitemaps list no pages", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string, _ *pagescope.URLFilter) ([]string, error) {
				return nil, nil
			},
		}
		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/"}, Sitemap: true}

		err := cmd.Run(deps)

		assert.Equal(t, pagescope.ENOTFOUND, pagescope.ErrorCode(err))
	})

	t.Run("saves successful reports and commits", func(t *testing.T) {
		t.Parallel()

		var saved []string
		committed := false
		var storeDir string
		deps, stdout, _ := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, urls []string, _ pagescope.ReportOptions, _ pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
				return []*pagescope.Report{
					{URL: urls[0]},
					{URL: urls[1], Error: "timeout"},
				}, nil
			},
		}
		deps.NewStore = func(dir string) pagescope.ReportStore {
			storeDir = dir
			return &mock.ReportStore{
				SaveFn: func(_ context.Context, r *pagescope.Report) error {
					saved = append(saved, r.URL)
					return nil
				},
				CommitFn: func() error {
					committed = true
					return nil
				},
				AbortFn: func() error { return nil },
			}
		}
		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/a", "https://example.com/b"}, Out: "out"}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "out", storeDir)
		assert.Equal(t, []string{"https://example.com/a"}, saved)
		assert.True(t, committed)
		assert.Contains(t, stdout.String(), "Saved 1 reports to out (1 failed)")
	})

	t.Run("aborts when nothing was saved", func(t *testing.T) {
		t.Parallel()

		aborted := false
		deps, stdout, _ := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, urls []string, _ pagescope.ReportOptions, _ pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
				return []*pagescope.Report{{URL: urls[0], Error: "timeout"}}, nil
			},
		}
		deps.NewStore = func(string) pagescope.ReportStore {
			return &mock.ReportStore{
				AbortFn: func() error {
					aborted = true
					return nil
				},
			}
		}
		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/a"}, Out: "out"}

		require.NoError(t, cmd.Run(deps))

		assert.True(t, aborted)
		assert.Contains(t, stdout.String(), "No reports saved")
	})

	t.Run("returns batch errors", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ []string, _ pagescope.ReportOptions, _ pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
				return nil, context.Canceled
			},
		}
		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/a"}}

		err := cmd.Run(deps)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}
