package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves pages from a PageService and falls back to a
// Fetcher for pages that are missing or stale. Fresh fetches are stored.
type CachingFetcher struct {
	Fetcher pagescope.Fetcher
	Pages   pagescope.PageService

	// MaxAge is how long a stored page stays fresh. Zero keeps pages
	// forever.
	MaxAge time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Fetch returns the stored HTML for url when fresh, or fetches and stores it.
func (c *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := c.Pages.FindPageByURL(ctx, url)
	switch {
	case err == nil && c.fresh(page):
		return page.HTML, nil
	case err != nil && pagescope.ErrorCode(err) != pagescope.ENOTFOUND:
		return "", fmt.Errorf("reading page cache: %w", err)
	}

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if err := c.Pages.SavePage(ctx, &pagescope.Page{URL: url, HTML: html}); err != nil {
		return "", fmt.Errorf("writing page cache: %w", err)
	}
	return html, nil
}

// Close closes the underlying fetcher.
func (c *CachingFetcher) Close() error {
	return c.Fetcher.Close()
}

func (c *CachingFetcher) fresh(p *pagescope.Page) bool {
	if c.MaxAge <= 0 {
		return true
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().Sub(p.FetchedAt) < c.MaxAge
}
