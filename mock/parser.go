package mock

import "github.com/fwojciec/pagescope"

var (
	_ pagescope.Parser          = (*Parser)(nil)
	_ pagescope.ContentDetector = (*ContentDetector)(nil)
)

// Parser is a mock implementation of pagescope.Parser.
type Parser struct {
	ParseFn func(html string) (pagescope.Document, error)
}

func (p *Parser) Parse(html string) (pagescope.Document, error) {
	return p.ParseFn(html)
}

// ContentDetector is a mock implementation of pagescope.ContentDetector.
type ContentDetector struct {
	DetectFn func(doc pagescope.Document) (pagescope.Framework, string)
}

func (d *ContentDetector) Detect(doc pagescope.Document) (pagescope.Framework, string) {
	return d.DetectFn(doc)
}
