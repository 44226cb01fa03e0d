package crawl

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/pagescope"
)

// Prober picks between a plain HTTP fetcher and a browser fetcher for a
// site by fetching one page both ways.
type Prober struct {
	HTTP      pagescope.Fetcher
	Browser   pagescope.Fetcher
	Extractor pagescope.Extractor
}

// Choose returns the fetcher to use for the site of probeURL. The browser
// wins when plain HTTP fails or when rendering adds substantial content;
// plain HTTP wins when the browser fails.
func (p *Prober) Choose(ctx context.Context, probeURL string) pagescope.Fetcher {
	httpHTML, err := p.HTTP.Fetch(ctx, probeURL)
	if err != nil {
		return p.Browser
	}
	browserHTML, err := p.Browser.Fetch(ctx, probeURL)
	if err != nil {
		return p.HTTP
	}
	if ContentDiffers(httpHTML, browserHTML, p.Extractor) {
		return p.Browser
	}
	return p.HTTP
}

// ContentDiffers reports whether the rendered page carries more than 50%
// more main content than the static one. Extraction errors count as a
// difference.
func ContentDiffers(staticHTML, renderedHTML string, extractor pagescope.Extractor) bool {
	static, err := extractor.Extract(staticHTML)
	if err != nil {
		return true
	}
	rendered, err := extractor.Extract(renderedHTML)
	if err != nil {
		return true
	}

	staticLen, renderedLen := len(static.ContentHTML), len(rendered.ContentHTML)
	if staticLen == 0 {
		return renderedLen > 0
	}
	return float64(renderedLen) > float64(staticLen)*1.5
}

var _ pagescope.Fetcher = (*AutoFetcher)(nil)

// AutoFetcher probes the first URL it is asked for and fetches every URL
// with the fetcher the probe chose.
type AutoFetcher struct {
	Prober *Prober

	once   sync.Once
	chosen pagescope.Fetcher
}

// Fetch retrieves url with the chosen fetcher, probing on first use.
func (f *AutoFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.once.Do(func() {
		f.chosen = f.Prober.Choose(ctx, url)
	})
	return f.chosen.Fetch(ctx, url)
}

// Close closes both candidate fetchers.
func (f *AutoFetcher) Close() error {
	return errors.Join(f.Prober.HTTP.Close(), f.Prober.Browser.Close())
}
