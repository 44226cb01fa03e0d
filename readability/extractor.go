// Package readability narrows pages to their main content with
// go-readability.
package readability

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagescope"
	"github.com/go-shiori/go-readability"
)

var _ pagescope.Extractor = (*Extractor)(nil)

// Extractor implements pagescope.Extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML. Pages readability cannot
// find an article in yield ENOTFOUND.
func (*Extractor) Extract(rawHTML string) (*pagescope.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagescope.Errorf(pagescope.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, pagescope.Errorf(pagescope.ENOTFOUND, "no main content found")
	}

	return &pagescope.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
