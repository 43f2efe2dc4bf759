package mock

import (
	"context"

	"github.com/fwojciec/ldraw"
)

var _ ldraw.ModelParser = (*ModelParser)(nil)

// ModelParser is a mock implementation of ldraw.ModelParser.
type ModelParser struct {
	ParseModelFn func(ctx context.Context, name string) (*ldraw.Document, error)
}

func (p *ModelParser) ParseModel(ctx context.Context, name string) (*ldraw.Document, error) {
	return p.ParseModelFn(ctx, name)
}
