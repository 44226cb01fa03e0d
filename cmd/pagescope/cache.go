package main

import (
	"fmt"
	"time"
)

// Run executes the cache stats command.
func (c *CacheStatsCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.CountPages(deps.Ctx)
	if err != nil {
		return deps.fail(err)
	}
	fmt.Fprintf(deps.Stdout, "%d cached pages\n", n)
	return nil
}

// Run executes the cache prune command.
func (c *CachePruneCmd) Run(deps *Dependencies) error {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	n, err := deps.Cache.PrunePages(deps.Ctx, now().Add(-c.OlderThan))
	if err != nil {
		return deps.fail(err)
	}
	fmt.Fprintf(deps.Stdout, "Deleted %d cached pages\n", n)
	return nil
}
