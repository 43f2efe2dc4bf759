// Package fs locates, reads and writes LDraw files on the local filesystem.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/ldraw"
	"github.com/fwojciec/ldraw/bloom"
)

// Library index sizing. An official LDraw library holds roughly 20k files.
const (
	DefaultExpectedFiles     = 20000
	DefaultFalsePositiveRate = 0.01
)

// searchDirs are the library subdirectories probed for a part, in priority order.
var searchDirs = [][]string{
	{"models"},
	{"Unofficial", "parts"},
	{"Unofficial", "p"},
	{"parts"},
	{"p"},
}

// Ensure Resolver implements ldraw.Resolver at compile time.
var _ ldraw.Resolver = (*Resolver)(nil)

// Resolver locates parts under an LDraw library root.
//
// A name is tried as given, then relative to the referencing model's
// directory, then in the library search directories. Failing that, the
// whole library is walked for a file with the same base name. The walk
// order among same-named files in different subtrees is unspecified.
type Resolver struct {
	root     string
	useIndex bool
	expected uint
	fpRate   float64

	mu    sync.Mutex
	index *bloom.Filter
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIndex enables or disables the library base name index consulted
// before the fallback walk. Enabled by default.
func WithIndex(enabled bool) Option {
	return func(r *Resolver) {
		r.useIndex = enabled
	}
}

// WithExpectedFiles sizes the library index for n files.
// Defaults to DefaultExpectedFiles if not specified.
func WithExpectedFiles(n uint) Option {
	return func(r *Resolver) {
		r.expected = n
	}
}

// NewResolver creates a Resolver for the library at root.
func NewResolver(root string, opts ...Option) *Resolver {
	r := &Resolver{
		root:     root,
		useIndex: true,
		expected: DefaultExpectedFiles,
		fpRate:   DefaultFalsePositiveRate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidates returns the paths probed for name before the fallback walk,
// in priority order. The modelDir candidate is omitted when modelDir is empty.
func (r *Resolver) Candidates(name, modelDir string) []string {
	paths := make([]string, 0, len(searchDirs)+2)
	paths = append(paths, name)
	if modelDir != "" {
		paths = append(paths, filepath.Join(modelDir, name))
	}
	for _, dir := range searchDirs {
		elems := append([]string{r.root}, dir...)
		paths = append(paths, filepath.Join(append(elems, name)...))
	}
	return paths
}

// Resolve returns the first existing file for name.
func (r *Resolver) Resolve(ctx context.Context, name, modelDir string) (string, error) {
	if name == "" {
		return "", ldraw.Errorf(ldraw.ENOTFOUND, "empty part name")
	}

	for _, path := range r.Candidates(name, modelDir) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if isFile(path) {
			return path, nil
		}
	}

	path, err := r.search(ctx, filepath.Base(name))
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ldraw.Errorf(ldraw.ENOTFOUND, "file not found: %s", name)
	}
	return path, nil
}

// search walks the library for a file named base and returns the first match,
// or "" if there is none.
func (r *Resolver) search(ctx context.Context, base string) (string, error) {
	if r.useIndex {
		if index := r.libraryIndex(ctx); index != nil && !index.Test(base) {
			return "", nil
		}
	}

	var found string
	err := filepath.WalkDir(r.root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped like missing ones.
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == base && isFile(path) {
			found = path
			return iofs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// libraryIndex returns a filter holding the base name of every file in the
// library, building it on first use. It returns nil if the library could not
// be walked completely; an incomplete index would hide existing files.
func (r *Resolver) libraryIndex(ctx context.Context) *bloom.Filter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil {
		return r.index
	}

	if _, err := os.Stat(r.root); err != nil {
		return nil
	}

	f := bloom.NewFilter(r.expected, r.fpRate)
	if err := f.AddTree(ctx, os.DirFS(r.root)); err != nil {
		return nil
	}

	r.index = f
	return f
}

// isFile reports whether path names an existing regular file, following symlinks.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
