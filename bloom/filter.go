// Package bloom provides probabilistic set membership for library file names.
package bloom

import (
	"context"
	"io/fs"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter over file names.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected names
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a name to the filter.
func (f *Filter) Add(name string) {
	f.f.AddString(name)
}

// Test returns true if the name might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(name)
}

// AddTree adds the base name of every file below the root of fsys.
// Entries that cannot be read are skipped, matching a directory search that
// skips them too. It stops early only when ctx is done.
func (f *Filter) AddTree(ctx context.Context, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			f.Add(d.Name())
		}
		return nil
	})
}
