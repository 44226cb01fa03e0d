// Package yaml renders pagescope results as YAML, including the
// LLM-readable view of site maps.
package yaml

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagescope"
	"gopkg.in/yaml.v3"
)

var _ pagescope.Encoder = (*Encoder)(nil)

// Encoder writes one YAML document per value.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes v to w with two-space indentation.
func (e *Encoder) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func (e *Encoder) Extension() string { return ".yaml" }
