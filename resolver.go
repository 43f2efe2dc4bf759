package ldraw

import (
	"context"
	"io"
)

// Resolver locates part files in an LDraw library.
type Resolver interface {
	// Resolve returns the path of the first existing file for name.
	// modelDir is the directory of the referencing file and may be empty.
	// Returns ENOTFOUND if no candidate exists.
	Resolve(ctx context.Context, name, modelDir string) (string, error)
}

// Source opens located files for reading.
type Source interface {
	// Open returns the decoded text content of the file at path.
	// The caller must close the returned reader.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
