package mock

import "github.com/fwojciec/pagescope"

var _ pagescope.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagescope.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagescope.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagescope.ExtractResult, error) {
	return e.ExtractFn(html)
}
