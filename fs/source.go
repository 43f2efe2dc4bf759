package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/ldraw"
	"github.com/klauspost/readahead"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure Source implements ldraw.Source at compile time.
var _ ldraw.Source = (*Source)(nil)

// DefaultReadAheadSize is the file size from which reads are prefetched on a
// background goroutine. Library parts are far smaller; large models are not.
const DefaultReadAheadSize = 1 << 20

// Source reads LDraw files from disk as UTF-8 text.
// A UTF-8 byte order mark is dropped and UTF-16 files with a byte order
// mark are transcoded, since both are common in files saved by Windows
// editors.
type Source struct {
	readAhead int64
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithReadAhead prefetches files of at least size bytes asynchronously.
// A size of zero or less disables read-ahead.
func WithReadAhead(size int64) SourceOption {
	return func(s *Source) {
		s.readAhead = size
	}
}

// NewSource creates a new Source.
func NewSource(opts ...SourceOption) *Source {
	s := &Source{readAhead: DefaultReadAheadSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open opens the file at path.
func (s *Source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var rc io.ReadCloser = f
	if s.readAhead > 0 {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.Size() >= s.readAhead {
			rc = readahead.NewReadCloser(f)
		}
	}

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &file{
		Reader: transform.NewReader(rc, dec),
		c:      rc,
	}, nil
}

// file closes the underlying reader of a decoding reader.
type file struct {
	io.Reader
	c io.Closer
}

func (f *file) Close() error {
	return f.c.Close()
}
