package main

import (
	"github.com/fwojciec/pagescope"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}

	opts := c.ScopeFlags.options()
	opts.MaxTextLen = c.MaxLen
	opts.Truncate = c.Truncate
	opts.KeepFragments = c.KeepFragments
	opts.HeadingsAsText = c.HeadingsAsText
	opts.Paths = c.Paths

	r, err := pagescope.BuildReport(p.Doc, pagescope.DetectSelector(deps.Detector, p.Doc, opts))
	if err != nil {
		return deps.fail(err)
	}
	r.URL = p.URL
	if r.Title == "" {
		r.Title = p.Title
	}

	if deps.structured() {
		return deps.encode(r)
	}
	writeReport(deps.Stdout, r)
	return nil
}
