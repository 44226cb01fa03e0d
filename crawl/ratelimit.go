package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/pagescope"
	"golang.org/x/time/rate"
)

var _ pagescope.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a request rate per domain with token buckets, so
// scrapes spanning several sites only throttle requests to the same one.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewDomainLimiter creates a limiter allowing rps requests per second to
// each domain with a burst of 1. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    1,
	}
}

// Wait blocks until a request to domain is allowed. Domains are compared
// case-insensitively. Returns an error if ctx is done first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = strings.ToLower(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Domain returns the host of rawURL used as the rate limiting key, or
// rawURL itself when it has no host.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}
