package ldraw

import "context"

// ParseFunc produces the document for a part on a cache miss.
type ParseFunc func(ctx context.Context) (*Document, error)

// PartCache maps normalized part IDs to parsed documents for one parse
// session. Entries are never replaced once stored: the first document stored
// for an ID wins.
type PartCache interface {
	// Get returns the document stored for id.
	Get(id string) (*Document, bool)

	// GetOrParse returns the document stored for id, calling fn and storing
	// its result on a miss. fn runs at most once per id. Failed parses are
	// not stored.
	GetOrParse(ctx context.Context, id string, fn ParseFunc) (*Document, error)

	// Len returns the number of stored documents.
	Len() int

	// Parts returns a snapshot of all stored documents keyed by part ID.
	Parts() map[string]*Document
}
