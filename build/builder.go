// Package build parses LDraw models together with every part they reference.
// Each distinct part is located and parsed once per session, however many
// times it is placed.
package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/ldraw"
	ldslog "github.com/fwojciec/ldraw/slog"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single line. Real LDraw lines are well under 1 KB.
const maxLineSize = 1 << 20

// Compile-time interface verification.
var _ ldraw.ModelParser = (*Builder)(nil)

// Builder parses a model file and all parts it references.
//
// Parts are visited from an explicit work stack rather than by recursion,
// in the same order a depth-first descent would visit them. A part enters the
// cache before its own references are visited, so reference cycles end in a
// cache hit instead of unbounded descent.
type Builder struct {
	Resolver ldraw.Resolver
	Source   ldraw.Source
	Config   ldraw.Config

	// NewCache returns the part cache for one session. Defaults to NewCache.
	NewCache func() ldraw.PartCache

	// Logger receives trace notices such as cache hits. Defaults to discarding.
	Logger *slog.Logger
}

// NewBuilder creates a Builder with the given collaborators and configuration.
func NewBuilder(resolver ldraw.Resolver, source ldraw.Source, cfg ldraw.Config) *Builder {
	return &Builder{
		Resolver: resolver,
		Source:   source,
		Config:   cfg,
	}
}

// ParseModel resolves name, parses it and every part it transitively
// references, and returns the root document with Parts populated.
func (b *Builder) ParseModel(ctx context.Context, name string) (*ldraw.Document, error) {
	if err := b.Config.Validate(); err != nil {
		return nil, err
	}

	s := &session{
		builder: b,
		cache:   b.newCache(),
		logger:  b.logger(),
	}

	if skip := b.Config.Skip; len(skip.Types()) > 0 {
		s.logger.Log(ctx, ldslog.LevelTrace, "skip", "types", skip.String())
	}

	path, err := b.Resolver.Resolve(ctx, name, "")
	if err != nil {
		return nil, err
	}

	root, refs, err := s.parseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if n := b.Config.Concurrency; n > 1 {
		err = s.runConcurrent(ctx, refs, n)
	} else {
		err = s.run(ctx, refs)
	}
	if err != nil {
		return nil, err
	}

	root.Parts = s.cache.Parts()
	return root, nil
}

func (b *Builder) newCache() ldraw.PartCache {
	if b.NewCache != nil {
		return b.NewCache()
	}
	return NewCache()
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// session holds the state of one ParseModel call.
type session struct {
	builder *Builder
	cache   ldraw.PartCache
	logger  *slog.Logger
}

// run visits pending references one at a time.
func (s *session) run(ctx context.Context, refs []pending) error {
	var work stack
	work.PushAll(refs)

	for {
		p, ok := work.Pop()
		if !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		children, err := s.visit(ctx, p)
		if err != nil {
			return err
		}
		work.PushAll(children)
	}
}

// runConcurrent visits up to limit references at once. Only this goroutine
// touches the work stack; workers hand back the references they discover.
// Which file wins for an ID that resolves differently from two directories
// depends on scheduling.
func (s *session) runConcurrent(ctx context.Context, refs []pending, limit int) error {
	g, gctx := errgroup.WithContext(ctx)

	// Buffered so that workers never block: at most limit are in flight.
	results := make(chan []pending, limit)

	var work stack
	work.PushAll(refs)
	inflight := 0

	for {
		for inflight < limit && gctx.Err() == nil {
			p, ok := work.Pop()
			if !ok {
				break
			}
			inflight++
			g.Go(func() error {
				children, err := s.visit(gctx, p)
				results <- children
				return err
			})
		}

		if inflight == 0 {
			break
		}

		children := <-results
		inflight--
		if gctx.Err() == nil {
			work.PushAll(children)
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// visit resolves and parses one referenced part unless it is already cached.
// It returns the references found in the part if this call parsed it.
// A part that cannot be located is skipped.
func (s *session) visit(ctx context.Context, p pending) ([]pending, error) {
	if _, ok := s.cache.Get(p.partID); ok {
		s.logger.Log(ctx, ldslog.LevelTrace, "cache hit", "part", p.partID)
		return nil, nil
	}

	path, err := s.builder.Resolver.Resolve(ctx, p.partID, p.modelDir)
	if err != nil {
		if ldraw.ErrorCode(err) == ldraw.ENOTFOUND {
			return nil, nil
		}
		return nil, err
	}

	var children []pending
	_, err = s.cache.GetOrParse(ctx, p.partID, func(ctx context.Context) (*ldraw.Document, error) {
		doc, refs, err := s.parseFile(ctx, path)
		children = refs
		return doc, err
	})
	if err != nil {
		return nil, err
	}
	return children, nil
}

// parseFile reads and decodes the file at path. It returns the document and
// the part references to visit, each tagged with the file's directory.
func (s *session) parseFile(ctx context.Context, path string) (*ldraw.Document, []pending, error) {
	rc, err := s.builder.Source.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	return s.decode(ctx, rc, path)
}

func (s *session) decode(ctx context.Context, r io.Reader, path string) (*ldraw.Document, []pending, error) {
	skip := s.builder.Config.Skip
	dir := filepath.Dir(path)

	doc := &ldraw.Document{}
	var refs []pending

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		line := sc.Text()
		lt, fields, ok := ldraw.ClassifyLine(line)
		if !ok {
			continue
		}

		// Comments are scanned for the part type even when skipped.
		if lt == ldraw.LineComment {
			c, ok := ldraw.DecodeComment(line)
			if !ok {
				continue
			}
			if doc.PartType == "" {
				doc.PartType = c.PartType
			}
			if !skip.Has(ldraw.LineComment) {
				doc.Comments = append(doc.Comments, c.Text)
			}
			continue
		}

		if skip.Has(lt) {
			continue
		}

		switch lt {
		case ldraw.LineSubpart:
			ref, err := ldraw.DecodePartReference(fields)
			if err != nil {
				return nil, nil, malformed(path, n, err)
			}
			doc.Subparts = append(doc.Subparts, ref)
			refs = append(refs, pending{partID: ref.PartID, modelDir: dir})
		case ldraw.LineLine:
			rec, err := ldraw.DecodeLine(fields)
			if err != nil {
				return nil, nil, malformed(path, n, err)
			}
			doc.Lines = append(doc.Lines, rec)
		case ldraw.LineTri:
			rec, err := ldraw.DecodeTri(fields)
			if err != nil {
				return nil, nil, malformed(path, n, err)
			}
			doc.Tris = append(doc.Tris, rec)
		case ldraw.LineQuad:
			rec, err := ldraw.DecodeQuad(fields)
			if err != nil {
				return nil, nil, malformed(path, n, err)
			}
			doc.Quads = append(doc.Quads, rec)
		case ldraw.LineOptLine:
			rec, err := ldraw.DecodeOptLine(fields)
			if err != nil {
				return nil, nil, malformed(path, n, err)
			}
			doc.OptLines = append(doc.OptLines, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return doc, refs, nil
}

// malformed locates a decoding error at a line of a file.
func malformed(path string, line int, err error) error {
	return ldraw.Errorf(ldraw.EMALFORMED, "%s:%d: %s", path, line, ldraw.ErrorMessage(err))
}
