// Package json encodes parsed LDraw documents as JSON.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/ldraw"
)

// Ensure Encoder implements ldraw.Encoder at compile time.
var _ ldraw.Encoder = (*Encoder)(nil)

// Encoder writes a root document as JSON, indented by two spaces unless
// Minify is set.
type Encoder struct {
	Minify bool
}

// NewEncoder creates a new Encoder.
func NewEncoder(minify bool) *Encoder {
	return &Encoder{Minify: minify}
}

// root always carries the parts table, even when it is empty.
// The outer Parts field shadows the embedded one.
type root struct {
	*ldraw.Document
	Parts map[string]*ldraw.Document `json:"parts"`
}

// Encode writes doc to w.
func (e *Encoder) Encode(w io.Writer, doc *ldraw.Document) error {
	if doc == nil {
		return ldraw.Errorf(ldraw.EINVALID, "document required")
	}

	parts := doc.Parts
	if parts == nil {
		parts = map[string]*ldraw.Document{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !e.Minify {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(root{Document: doc, Parts: parts})
}
