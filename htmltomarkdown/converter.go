// Package htmltomarkdown renders scoped subtrees as Markdown.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagescope"
)

var _ pagescope.Converter = (*Converter)(nil)

// Converter implements pagescope.Converter.
type Converter struct {
	conv *converter.Converter

	// Domain, when set, turns relative links and image sources into
	// absolute URLs on that domain.
	Domain string
}

// NewConverter creates a Converter for CommonMark with tables and
// strikethrough.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
				strikethrough.NewStrikethroughPlugin(),
			),
		),
	}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagescope.Errorf(pagescope.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.Domain != "" {
		opts = append(opts, converter.WithDomain(c.Domain))
	}
	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return md, nil
}
