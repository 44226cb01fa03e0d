package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagescope"
)

// maxSitemapDepth bounds how deep sitemap indexes may nest.
const maxSitemapDepth = 5

var _ pagescope.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from XML sitemaps.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: DefaultUserAgent}
}

// DiscoverURLs returns the page URLs of the site at baseURL, in sitemap
// order without duplicates. Sitemaps are located through robots.txt with
// /sitemap.xml as the fallback; gzipped sitemaps are accepted. A site
// without sitemaps yields an empty slice.
//
// When baseURL has a path, only URLs below that path are kept, so
// https://example.com/docs matches /docs/intro but not /documentation.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pagescope.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, pagescope.Errorf(pagescope.EINVALID, "invalid base URL %q", baseURL)
	}
	prefix := strings.TrimSuffix(base.Path, "/")

	sitemaps, err := s.locate(ctx, base)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalker{svc: s, seen: make(map[string]bool)}
	for _, sm := range sitemaps {
		if err := w.walk(ctx, sm, 0); err != nil {
			return nil, err
		}
	}

	urls := []string{}
	kept := make(map[string]bool)
	for _, u := range w.urls {
		if kept[u] || !underPath(u, prefix) || !filter.Match(u) {
			continue
		}
		kept[u] = true
		urls = append(urls, u)
	}
	return urls, nil
}

// locate returns the sitemap URLs declared in robots.txt, or /sitemap.xml
// when robots.txt declares none and it exists.
func (s *SitemapService) locate(ctx context.Context, base *url.URL) ([]string, error) {
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	if sitemaps, err := s.fromRobots(ctx, root.JoinPath("robots.txt").String()); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fallback := root.JoinPath("sitemap.xml").String()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fallback, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return []string{fallback}, nil
}

// fromRobots extracts the Sitemap directives of a robots.txt file.
func (s *SitemapService) fromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	resp, err := get(ctx, s.client, robotsURL, s.userAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > len(directive) && strings.EqualFold(line[:len(directive)], directive) {
			if u := strings.TrimSpace(line[len(directive):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalker collects page URLs from a tree of sitemaps, visiting each
// sitemap once.
type sitemapWalker struct {
	svc  *SitemapService
	seen map[string]bool
	urls []string
}

func (w *sitemapWalker) walk(ctx context.Context, sitemapURL string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.seen[sitemapURL] || depth > maxSitemapDepth {
		return nil
	}
	w.seen[sitemapURL] = true

	root, err := w.svc.load(ctx, sitemapURL)
	if err != nil {
		return err
	}

	if root.Tag == "sitemapindex" {
		for _, child := range locs(root, "sitemap") {
			if err := w.walk(ctx, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	w.urls = append(w.urls, locs(root, "url")...)
	return nil
}

// load fetches and parses one sitemap document.
func (s *SitemapService) load(ctx context.Context, sitemapURL string) (*etree.Element, error) {
	resp, err := get(ctx, s.client, sitemapURL, s.userAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if strings.HasSuffix(sitemapURL, ".gz") || resp.Header.Get("Content-Type") == "application/x-gzip" {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("opening gzipped sitemap %s: %w", sitemapURL, err)
		}
		defer zr.Close()
		body = zr
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, pagescope.Errorf(pagescope.EINVALID, "empty sitemap XML at %s", sitemapURL)
	}
	return root, nil
}

// locs returns the trimmed <loc> values of the tag children of root.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// underPath reports whether the path of rawURL is prefix or lies below it,
// respecting segment boundaries.
func underPath(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}
