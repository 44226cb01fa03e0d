package mock

import "github.com/fwojciec/pagescope"

var _ pagescope.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagescope.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
