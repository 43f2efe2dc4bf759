package mock

import (
	"context"

	"github.com/fwojciec/ldraw"
)

var _ ldraw.PartCache = (*PartCache)(nil)

// PartCache is a mock implementation of ldraw.PartCache.
type PartCache struct {
	GetFn        func(id string) (*ldraw.Document, bool)
	GetOrParseFn func(ctx context.Context, id string, fn ldraw.ParseFunc) (*ldraw.Document, error)
	LenFn        func() int
	PartsFn      func() map[string]*ldraw.Document
}

func (c *PartCache) Get(id string) (*ldraw.Document, bool) {
	return c.GetFn(id)
}

func (c *PartCache) GetOrParse(ctx context.Context, id string, fn ldraw.ParseFunc) (*ldraw.Document, error) {
	return c.GetOrParseFn(ctx, id, fn)
}

func (c *PartCache) Len() int {
	return c.LenFn()
}

func (c *PartCache) Parts() map[string]*ldraw.Document {
	return c.PartsFn()
}
