// Package trafilatura narrows pages to their main content with
// go-trafilatura, keeping the links, images and tables that pagescope
// classifies afterwards.
package trafilatura

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/pagescope"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ pagescope.Extractor = (*Extractor)(nil)

// Extractor implements pagescope.Extractor.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates an Extractor that keeps links, images and tables
// and falls back to other algorithms when trafilatura finds too little.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			IncludeLinks:    true,
			IncludeImages:   true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the main content of rawHTML. Pages without detectable
// main content yield ENOTFOUND.
func (e *Extractor) Extract(rawHTML string) (*pagescope.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagescope.Errorf(pagescope.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}
	if result == nil || result.ContentNode == nil {
		return nil, pagescope.Errorf(pagescope.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}
	return &pagescope.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
