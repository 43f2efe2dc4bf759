// Package yaml encodes parsed LDraw documents as YAML using goccy/go-yaml.
package yaml

import (
	"fmt"
	"io"
	"slices"

	"github.com/fwojciec/ldraw"
	"github.com/goccy/go-yaml"
)

// Ensure Encoder implements ldraw.Encoder at compile time.
var _ ldraw.Encoder = (*Encoder)(nil)

// DefaultIndent is the block style indentation width.
const DefaultIndent = 2

// Encoder writes a root document as YAML. Keys follow the JSON field names
// and order. Minify switches to flow style.
type Encoder struct {
	Minify bool
}

// NewEncoder creates a new Encoder.
func NewEncoder(minify bool) *Encoder {
	return &Encoder{Minify: minify}
}

// Encode writes doc to w.
func (e *Encoder) Encode(w io.Writer, doc *ldraw.Document) error {
	if doc == nil {
		return ldraw.Errorf(ldraw.EINVALID, "document required")
	}

	opts := []yaml.EncodeOption{yaml.Indent(DefaultIndent)}
	if e.Minify {
		opts = append(opts, yaml.Flow(true))
	}

	m := document(doc)
	m = append(m, yaml.MapItem{Key: "parts", Value: parts(doc.Parts)})

	data, err := yaml.MarshalWithOptions(m, opts...)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// parts returns the part table ordered by part ID.
func parts(table map[string]*ldraw.Document) yaml.MapSlice {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	m := make(yaml.MapSlice, 0, len(ids))
	for _, id := range ids {
		m = append(m, yaml.MapItem{Key: id, Value: document(table[id])})
	}
	return m
}

// document converts doc without its part table. Empty collections are omitted.
func document(doc *ldraw.Document) yaml.MapSlice {
	m := yaml.MapSlice{}
	if doc.PartType != "" {
		m = append(m, yaml.MapItem{Key: "partType", Value: doc.PartType})
	}
	if len(doc.Comments) > 0 {
		m = append(m, yaml.MapItem{Key: "comments", Value: doc.Comments})
	}
	if len(doc.Subparts) > 0 {
		refs := make([]yaml.MapSlice, len(doc.Subparts))
		for i, ref := range doc.Subparts {
			refs[i] = yaml.MapSlice{
				{Key: "color", Value: ref.Color},
				{Key: "matrix", Value: ref.Matrix[:]},
				{Key: "partId", Value: ref.PartID},
			}
		}
		m = append(m, yaml.MapItem{Key: "subparts", Value: refs})
	}
	if len(doc.Lines) > 0 {
		recs := make([]yaml.MapSlice, len(doc.Lines))
		for i, l := range doc.Lines {
			recs[i] = record(l.Color, point{"pos1", l.Pos1}, point{"pos2", l.Pos2})
		}
		m = append(m, yaml.MapItem{Key: "lines", Value: recs})
	}
	if len(doc.Tris) > 0 {
		recs := make([]yaml.MapSlice, len(doc.Tris))
		for i, tri := range doc.Tris {
			recs[i] = record(tri.Color, point{"pos1", tri.Pos1}, point{"pos2", tri.Pos2}, point{"pos3", tri.Pos3})
		}
		m = append(m, yaml.MapItem{Key: "tris", Value: recs})
	}
	if len(doc.Quads) > 0 {
		recs := make([]yaml.MapSlice, len(doc.Quads))
		for i, q := range doc.Quads {
			recs[i] = record(q.Color, point{"pos1", q.Pos1}, point{"pos2", q.Pos2}, point{"pos3", q.Pos3}, point{"pos4", q.Pos4})
		}
		m = append(m, yaml.MapItem{Key: "quads", Value: recs})
	}
	if len(doc.OptLines) > 0 {
		recs := make([]yaml.MapSlice, len(doc.OptLines))
		for i, o := range doc.OptLines {
			recs[i] = record(o.Color, point{"pos1", o.Pos1}, point{"pos2", o.Pos2}, point{"ctl1", o.Ctl1}, point{"ctl2", o.Ctl2})
		}
		m = append(m, yaml.MapItem{Key: "optlines", Value: recs})
	}
	return m
}

// point is a named position of a geometry record.
type point struct {
	name string
	pos  ldraw.Vector
}

// record builds a geometry record from its colour and points.
func record(color ldraw.Value, points ...point) yaml.MapSlice {
	m := yaml.MapSlice{{Key: "color", Value: color}}
	for _, p := range points {
		m = append(m, yaml.MapItem{Key: p.name, Value: p.pos[:]})
	}
	return m
}
