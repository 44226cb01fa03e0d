package main

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/fwojciec/pagescope"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls, err := c.urls(deps)
	if err != nil {
		return deps.fail(err)
	}

	opts := c.ScopeFlags.options()
	opts.MaxTextLen = c.MaxLen
	opts.Truncate = c.Truncate

	progress := func(p pagescope.ScrapeProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "\rskip %s: %s\n", p.URL, pagescope.ErrorMessage(p.Error))
		}
		fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
	}

	reports, err := deps.Scraper.Scrape(deps.Ctx, urls, opts, progress)
	// Clear progress line
	fmt.Fprintf(deps.Stderr, "\r%80s\r", "")
	if err != nil {
		return deps.fail(err)
	}

	if c.Out != "" {
		return c.save(deps, reports)
	}
	if deps.structured() {
		return deps.encode(reports)
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(deps.Stdout, "\n---")
		}
		writeReport(deps.Stdout, r)
	}
	return nil
}

// urls returns the pages to scrape: the arguments themselves, or the
// pages listed in their sitemaps with --sitemap.
func (c *ScrapeCmd) urls(deps *Dependencies) ([]string, error) {
	for _, u := range c.URLs {
		if !isURL(u) {
			return nil, pagescope.Errorf(pagescope.EINVALID, "%q is not an http(s) URL", u)
		}
	}
	if !c.Sitemap {
		return c.URLs, nil
	}

	filter, err := compileFilter(c.Filter, c.Exclude)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, site := range c.URLs {
		found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site, filter)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	if len(urls) == 0 {
		return nil, pagescope.Errorf(pagescope.ENOTFOUND, "no pages found in sitemaps")
	}
	fmt.Fprintf(deps.Stderr, "Found %d URLs\n", len(urls))
	return urls, nil
}

// save writes every successful report to the output directory, replacing
// its previous contents only when at least one report was written.
func (c *ScrapeCmd) save(deps *Dependencies, reports []*pagescope.Report) error {
	store := deps.NewStore(c.Out)

	saved, failed := 0, 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
			continue
		}
		if err := store.Save(deps.Ctx, r); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", r.URL, pagescope.ErrorMessage(err))
			return err
		}
		saved++
	}

	if saved == 0 {
		_ = store.Abort()
		fmt.Fprintln(deps.Stdout, "No reports saved")
		return nil
	}
	if err := store.Commit(); err != nil {
		return deps.fail(err)
	}
	fmt.Fprintf(deps.Stdout, "Saved %d reports to %s (%d failed)\n", saved, c.Out, failed)
	return nil
}

func compileFilter(include, exclude []string) (*pagescope.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	filter := &pagescope.URLFilter{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, pagescope.Errorf(pagescope.EINVALID, "invalid filter pattern %q: %v", p, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, pagescope.Errorf(pagescope.EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}

// truncateURL shortens a URL to its path for progress display, cutting
// from the left to keep the distinctive end.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
