package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   pagescope.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next pagescope.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs every failed page as it completes and a summary of the
// batch.
func (s *LoggingScraper) Scrape(ctx context.Context, urls []string, opts pagescope.ReportOptions, progress pagescope.ScrapeProgressFunc) (reports []*pagescope.Report, err error) {
	defer func(begin time.Time) {
		failed := 0
		for _, r := range reports {
			if r != nil && r.Error != "" {
				failed++
			}
		}
		s.logger.Info("scrape",
			"urls", len(urls),
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	logged := func(p pagescope.ScrapeProgress) {
		if p.Error != nil {
			s.logger.Warn("page failed", "url", p.URL, "err", p.Error)
		}
		if progress != nil {
			progress(p)
		}
	}
	return s.next.Scrape(ctx, urls, opts, logged)
}
