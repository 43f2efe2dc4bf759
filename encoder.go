package ldraw

import "io"

// Encoder writes a parsed root document in a serialization format.
type Encoder interface {
	Encode(w io.Writer, doc *Document) error
}
