package main

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/pagescope"
)

// page is a parsed source ready for traversal.
type page struct {
	Doc pagescope.Document

	// URL is the page URL, empty for file and stdin sources.
	URL string

	// Title comes from the extractor when one ran, else from <title>.
	Title string
}

// isURL reports whether source names an http or https page.
func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// readSource returns the raw HTML of a URL, a file, or "-" for stdin.
func readSource(deps *Dependencies, source string) (string, error) {
	switch {
	case source == "-":
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", pagescope.Errorf(pagescope.EINVALID, "failed to read stdin: %v", err)
		}
		return string(b), nil
	case isURL(source):
		if deps.Fetcher == nil {
			return "", pagescope.Errorf(pagescope.EINTERNAL, "no fetcher configured")
		}
		return deps.Fetcher.Fetch(deps.Ctx, source)
	default:
		b, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return "", pagescope.Errorf(pagescope.ENOTFOUND, "file %q not found", source)
		} else if err != nil {
			return "", pagescope.Errorf(pagescope.EINVALID, "failed to read %q: %v", source, err)
		}
		return string(b), nil
	}
}

// loadPage reads and parses source, narrowing it to its main content when
// an extractor is configured.
func loadPage(deps *Dependencies, source string) (*page, error) {
	html, err := readSource(deps, source)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(html) == "" {
		return nil, pagescope.Errorf(pagescope.EINVALID, "source %q is empty", source)
	}

	p := &page{}
	if isURL(source) {
		p.URL = source
	}

	if deps.Extractor != nil {
		extracted, err := deps.Extractor.Extract(html)
		if err != nil {
			return nil, err
		}
		html, p.Title = extracted.ContentHTML, extracted.Title
	}

	if p.Doc, err = deps.Parser.Parse(html); err != nil {
		return nil, err
	}
	if title := p.Doc.Title(); title != "" {
		p.Title = title
	}
	return p, nil
}

// scope resolves opts against the page, applying content detection when no
// selector was given.
func (p *page) scope(deps *Dependencies, opts pagescope.ReportOptions) (pagescope.Scope, error) {
	return pagescope.ResolveScope(p.Doc, pagescope.DetectSelector(deps.Detector, p.Doc, opts))
}
