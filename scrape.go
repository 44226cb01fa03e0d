package pagescope

import (
	"context"
	"io"
)

// ScrapeProgress reports progress during a batch scrape.
type ScrapeProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ScrapeProgressFunc is called as pages are processed.
type ScrapeProgressFunc func(ScrapeProgress)

// Scraper builds reports for many pages.
// Implementations hide fetching, caching, rate limiting and retries.
type Scraper interface {
	// Scrape returns one report per URL in input order. A page that could
	// not be processed yields a report with Error set rather than failing
	// the batch.
	Scrape(ctx context.Context, urls []string, opts ReportOptions, progress ScrapeProgressFunc) ([]*Report, error)
}

// ReportStore persists reports with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ReportStore interface {
	Save(ctx context.Context, report *Report) error
	Commit() error
	Abort() error
}

// Encoder serializes reports and other results in one format.
type Encoder interface {
	Encode(w io.Writer, v any) error

	// Extension is the file extension of the format, including the dot.
	Extension() string
}
