package mock

import (
	"context"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagescope.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pagescope.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagescope.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
