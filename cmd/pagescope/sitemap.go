package main

import (
	"fmt"

	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/yaml"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	pageURL := c.URL
	if pageURL == "" && isURL(c.Source) {
		pageURL = c.Source
	}
	if pageURL == "" {
		return deps.fail(pagescope.Errorf(pagescope.EINVALID, "--url is required for file and stdin sources"))
	}

	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	links, err := pagescope.Links(s, true)
	if err != nil {
		return deps.fail(err)
	}
	m, err := pagescope.SiteMapFromLinks(pageURL, links)
	if err != nil {
		return deps.fail(err)
	}
	m.Description = c.Description

	if deps.structured() {
		return deps.encode(newSiteMapResult(m))
	}
	view, err := yaml.SiteMapView(m, yaml.ViewOptions{IgnoreURLInfo: c.IgnoreURLInfo})
	if err != nil {
		return deps.fail(err)
	}
	fmt.Fprint(deps.Stdout, view)
	return nil
}

// siteMapResult is the structured output of the sitemap command.
type siteMapResult struct {
	URL          string                `json:"url" yaml:"url"`
	Domain       string                `json:"domainUrl" yaml:"domain_url"`
	Subdomain    string                `json:"subdomainUrl" yaml:"subdomain_url"`
	PageTemplate string                `json:"pageUrlTemplate" yaml:"page_url_template"`
	Description  string                `json:"description,omitempty" yaml:"description,omitempty"`
	Entries      []pagescope.EntryInfo `json:"entries" yaml:"entries"`
}

func newSiteMapResult(m *pagescope.SiteMap) siteMapResult {
	res := siteMapResult{
		URL:          m.URL,
		Domain:       m.Domain,
		Subdomain:    m.Subdomain,
		PageTemplate: m.PageTemplate,
		Description:  m.Description,
		Entries:      make([]pagescope.EntryInfo, 0, len(m.Entries)),
	}
	for _, e := range m.Entries {
		res.Entries = append(res.Entries, e.Info)
	}
	return res
}
