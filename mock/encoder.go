package mock

import (
	"io"

	"github.com/fwojciec/ldraw"
)

var _ ldraw.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of ldraw.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, doc *ldraw.Document) error
}

func (e *Encoder) Encode(w io.Writer, doc *ldraw.Document) error {
	return e.EncodeFn(w, doc)
}
