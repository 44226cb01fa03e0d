package mock

import (
	"context"

	"github.com/fwojciec/pagescope"
)

// Compile-time interface verification.
var (
	_ pagescope.PageService = (*PageService)(nil)
	_ pagescope.ReportStore = (*ReportStore)(nil)
	_ pagescope.Scraper     = (*Scraper)(nil)
)

// PageService is a mock implementation of pagescope.PageService.
type PageService struct {
	FindPageByURLFn func(ctx context.Context, url string) (*pagescope.Page, error)
	SavePageFn      func(ctx context.Context, page *pagescope.Page) error
	DeletePageFn    func(ctx context.Context, url string) error
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*pagescope.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) SavePage(ctx context.Context, page *pagescope.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) DeletePage(ctx context.Context, url string) error {
	return s.DeletePageFn(ctx, url)
}

// ReportStore is a mock implementation of pagescope.ReportStore.
type ReportStore struct {
	SaveFn   func(ctx context.Context, report *pagescope.Report) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ReportStore) Save(ctx context.Context, report *pagescope.Report) error {
	return s.SaveFn(ctx, report)
}

func (s *ReportStore) Commit() error {
	return s.CommitFn()
}

func (s *ReportStore) Abort() error {
	return s.AbortFn()
}

// Scraper is a mock implementation of pagescope.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, urls []string, opts pagescope.ReportOptions, progress pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error)
}

func (s *Scraper) Scrape(ctx context.Context, urls []string, opts pagescope.ReportOptions, progress pagescope.ScrapeProgressFunc) ([]*pagescope.Report, error) {
	return s.ScrapeFn(ctx, urls, opts, progress)
}
