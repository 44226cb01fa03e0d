// Package bloom tracks which links have already been reported using a
// Bloom filter, so batch scrapes over many pages can drop repeats in
// constant memory.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// LinkSet is an approximate set of link targets. False positives are
// possible, so a small fraction of new links may be reported as seen;
// false negatives are not. It is safe for concurrent use.
type LinkSet struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewLinkSet creates a set sized for n expected links with the given
// false positive rate.
func NewLinkSet(n uint, fpRate float64) *LinkSet {
	return &LinkSet{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen adds target to the set and reports whether it was already there.
// Targets are compared by Key.
func (s *LinkSet) Seen(target string, keepFragment bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestAndAddString(Key(target, keepFragment))
}

// Key normalizes a link target for comparison: the scheme and host are
// lowercased and, unless keepFragment is set, the fragment is dropped.
// Targets that do not parse are used verbatim.
func Key(target string, keepFragment bool) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	if !keepFragment {
		u.Fragment = ""
		u.RawFragment = ""
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}
