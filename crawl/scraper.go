// Package crawl builds reports for many pages at once. It coordinates
// fetching, caching, rate limiting, retries, content extraction and
// cross-page link deduplication.
package crawl

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/bloom"
	"golang.org/x/sync/errgroup"
)

// Link deduplication sizing.
const (
	expectedLinks     = 10000
	falsePositiveRate = 0.01
)

// DefaultConcurrency is the number of pages processed at once when
// Scraper.Concurrency is not set.
const DefaultConcurrency = 10

var _ pagescope.Scraper = (*Scraper)(nil)

// Scraper fetches pages concurrently and builds a report for each.
type Scraper struct {
	Fetcher pagescope.Fetcher
	Parser  pagescope.Parser

	// Extractor, when set, narrows each page to its main content before
	// parsing.
	Extractor pagescope.Extractor

	// Detector, when set, picks the start node of pages scraped without
	// a selector.
	Detector pagescope.ContentDetector

	// RateLimiter, when set, spaces requests to the same domain.
	RateLimiter pagescope.DomainLimiter

	Concurrency int

	// RetryDelays are the waits between fetch attempts. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// OnRetry, when set, is called before each retried fetch.
	OnRetry RetryFunc

	// UniqueLinks drops links already reported for an earlier page, in
	// input order.
	UniqueLinks bool
}

// Scrape returns one report per URL in input order. Failures of a single
// page are recorded in its Report.Error. Only context cancellation fails
// the whole batch.
func (s *Scraper) Scrape(ctx context.Context, urls []string, opts pagescope.ReportOptions, progress pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	reports := make([]*pagescope.Report, len(urls))

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			r, err := s.scrape(gctx, u, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				r = &pagescope.Report{URL: u, Error: err.Error()}
			}
			reports[i] = r

			if progress != nil {
				mu.Lock()
				completed++
				progress(pagescope.ScrapeProgress{
					URL:       u,
					Completed: completed,
					Total:     len(urls),
					Error:     err,
				})
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.UniqueLinks {
		dedupeLinks(reports, opts.KeepFragments)
	}
	return reports, nil
}

// scrape builds the report of one page.
func (s *Scraper) scrape(ctx context.Context, pageURL string, opts pagescope.ReportOptions) (*pagescope.Report, error) {
	fetcher := s.Fetcher
	if s.RateLimiter != nil {
		fetcher = &limitedFetcher{Fetcher: fetcher, limiter: s.RateLimiter}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, fetcher, pageURL, delays, s.OnRetry)
	if err != nil {
		return nil, err
	}

	var title string
	if s.Extractor != nil {
		extracted, err := s.Extractor.Extract(html)
		if err != nil {
			return nil, err
		}
		html, title = extracted.ContentHTML, extracted.Title
	}

	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	r, err := pagescope.BuildReport(doc, pagescope.DetectSelector(s.Detector, doc, opts))
	if err != nil {
		return nil, err
	}
	r.URL = pageURL
	if r.Title == "" {
		r.Title = title
	}
	return r, nil
}

// limitedFetcher waits for the domain's rate limit before every fetch,
// retries included.
type limitedFetcher struct {
	pagescope.Fetcher
	limiter pagescope.DomainLimiter
}

func (f *limitedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx, Domain(url)); err != nil {
		return "", err
	}
	return f.Fetcher.Fetch(ctx, url)
}

// dedupeLinks drops every link whose resolved target was already reported
// by an earlier page or earlier in the same page. Fragments distinguish
// targets only when keepFragments is set.
func dedupeLinks(reports []*pagescope.Report, keepFragments bool) {
	seen := bloom.NewLinkSet(expectedLinks, falsePositiveRate)
	for _, r := range reports {
		if r == nil || r.Error != "" {
			continue
		}
		base, _ := url.Parse(r.URL)

		kept := r.Links[:0]
		for _, l := range r.Links {
			if !seen.Seen(resolve(base, l.Href), keepFragments) {
				kept = append(kept, l)
			}
		}
		r.Links = kept
	}
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
