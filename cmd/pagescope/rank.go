package main

import (
	"fmt"

	"github.com/fwojciec/pagescope"
)

// Run executes the rank command.
func (c *RankCmd) Run(deps *Dependencies) error {
	p, err := loadPage(deps, c.Source)
	if err != nil {
		return deps.fail(err)
	}
	s, err := p.scope(deps, c.ScopeFlags.options())
	if err != nil {
		return deps.fail(err)
	}

	var texts []string
	for _, n := range pagescope.TextNodes(s) {
		texts = append(texts, n.Text())
	}

	matches, err := deps.Retriever.Rank(deps.Ctx, c.Query, texts, c.Limit)
	if err != nil {
		return deps.fail(err)
	}

	if deps.structured() {
		return deps.encode(matches)
	}
	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "%.4f\t%s\n", m.Score, oneLine(m.Text))
	}
	return nil
}
