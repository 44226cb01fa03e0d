// Package http fetches pages and XML sitemaps over plain HTTP, for sites
// that do not need JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/fwojciec/pagescope"
)

// Defaults for Fetcher.
const (
	// DefaultFetchTimeout is kept consistent with rod.DefaultFetchTimeout.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxBytes bounds the size of a fetched page.
	DefaultMaxBytes = 10 << 20

	// DefaultUserAgent identifies pagescope to servers.
	DefaultUserAgent = "pagescope/1.0 (+https://github.com/fwojciec/pagescope)"
)

var _ pagescope.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML with plain HTTP requests. Unlike rod.Fetcher it
// does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a whole request, body included.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes sets the largest accepted response body.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch returns the body served at url.
//
// A 404 or 410 response is ENOTFOUND. A body that is not HTML or text, or
// that exceeds the size limit, is EINVALID. Both are permanent and not
// worth retrying; any other failure is returned as is.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := get(ctx, f.client, url, f.userAgent)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" && !isTextual(ct) {
		return "", pagescope.Errorf(pagescope.EINVALID, "unsupported content type %q for %s", ct, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", pagescope.Errorf(pagescope.EINVALID, "page %s exceeds %d bytes", url, f.maxBytes)
	}
	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// get issues a GET and returns the response when the status is 200.
func get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagescope.Errorf(pagescope.EINVALID, "invalid URL %q: %v", url, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		resp.Body.Close()
		return nil, pagescope.Errorf(pagescope.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
}

func isTextual(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mt {
	case "text/html", "application/xhtml+xml", "text/plain", "application/xml", "text/xml":
		return true
	}
	return false
}
