package pagescope

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs from a site's XML sitemaps, used to
// seed batch scrapes.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in the sitemaps of the site
	// at baseURL. Sitemap indexes are followed. A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter keeps or drops URLs by pattern.
type URLFilter struct {
	// Include, when non-empty, keeps only URLs matching one of the patterns.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. It applies after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes all.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
