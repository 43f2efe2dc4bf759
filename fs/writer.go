package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/ldraw"
)

// Writer writes encoded documents to files.
type Writer struct {
	encoder ldraw.Encoder
}

// NewWriter creates a new Writer that encodes with enc.
func NewWriter(enc ldraw.Encoder) *Writer {
	return &Writer{encoder: enc}
}

// WriteFile encodes doc to path, creating parent directories as needed.
// Output goes to a temporary file in the same directory that is renamed
// over path once encoding succeeds, so path never holds partial output.
func (w *Writer) WriteFile(ctx context.Context, path string, doc *ldraw.Document) (err error) {
	if path == "" {
		return ldraw.Errorf(ldraw.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := w.encoder.Encode(f, doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Name(), err)
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
