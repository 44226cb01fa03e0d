// Package rod fetches JavaScript-rendered pages with a headless Chrome
// browser driven by go-rod.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagescope"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// snapshotJS serializes the rendered document with the content of open
// shadow roots inlined into their hosts, so links and text rendered by web
// components reach the parser.
const snapshotJS = `() => {
  const clone = document.documentElement.cloneNode(true);
  const src = document.documentElement.querySelectorAll('*');
  const dst = clone.querySelectorAll('*');
  for (let i = 0; i < src.length; i++) {
    if (src[i].shadowRoot) {
      dst[i].insertAdjacentHTML('beforeend', src[i].shadowRoot.innerHTML);
    }
  }
  return '<!DOCTYPE html>' + clone.outerHTML;
}`

var _ pagescope.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	timeout      time.Duration
	waitSelector string
	managerOpts  []ManagerOption
	closed       atomic.Bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout bounds each Fetch call, including navigation and
// rendering.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitSelector makes Fetch wait until an element matching selector is
// rendered before taking the snapshot.
func WithWaitSelector(selector string) FetcherOption {
	return func(f *Fetcher) {
		f.waitSelector = selector
	}
}

// WithRecycleAfter recycles the browser after n pages.
func WithRecycleAfter(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, WithMaxPages(n))
	}
}

// NewFetcher creates a Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pagescope.Errorf(pagescope.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	html, err := f.render(ctx, url)
	if err != nil {
		// rod reports cancellation in its own words.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}
	f.manager.IncrementPageCount()
	return html, nil
}

func (f *Fetcher) render(ctx context.Context, url string) (string, error) {
	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for load: %w", err)
	}
	if f.waitSelector != "" {
		if _, err := page.Element(f.waitSelector); err != nil {
			return "", fmt.Errorf("waiting for %q: %w", f.waitSelector, err)
		}
	}

	res, err := page.Eval(snapshotJS)
	if err != nil {
		return "", fmt.Errorf("serializing page: %w", err)
	}
	return res.Value.Str(), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
