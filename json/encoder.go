// Package json encodes pagescope results as JSON.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/pagescope"
)

var _ pagescope.Encoder = (*Encoder)(nil)

// Encoder writes one indented JSON document per value.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes v to w. HTML characters in texts and URLs are left
// unescaped.
func (e *Encoder) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (e *Encoder) Extension() string { return ".json" }
