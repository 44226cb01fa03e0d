package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/pagescope"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, pagescope.ReportOptions{Selector: c.Select})
	if err != nil {
		return deps.fail(err)
	}

	html, err := p.Doc.HTML(s.Start)
	if err != nil {
		return deps.fail(err)
	}

	var domain string
	if u, err := url.Parse(p.URL); err == nil && u.Host != "" {
		domain = u.Scheme + "://" + u.Host
	}
	md, err := deps.NewConverter(domain).Convert(html)
	if err != nil {
		return deps.fail(err)
	}

	fmt.Fprintln(deps.Stdout, strings.TrimRight(md, "\n"))
	return nil
}
