package mock

import (
	"context"
	"io"

	"github.com/fwojciec/ldraw"
)

var _ ldraw.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of ldraw.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, name, modelDir string) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, name, modelDir string) (string, error) {
	return r.ResolveFn(ctx, name, modelDir)
}

var _ ldraw.Source = (*Source)(nil)

// Source is a mock implementation of ldraw.Source.
type Source struct {
	OpenFn func(ctx context.Context, path string) (io.ReadCloser, error)
}

func (s *Source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.OpenFn(ctx, path)
}
