// Package etree encodes parsed LDraw documents as XML using beevik/etree.
package etree

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/ldraw"
)

// Ensure Encoder implements ldraw.Encoder at compile time.
var _ ldraw.Encoder = (*Encoder)(nil)

// Encoder writes a root document as XML. The root is a <model> element;
// referenced parts are <part> elements inside <parts>, ordered by part ID.
// Positions and matrices are space-separated attribute values.
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

	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	model := x.CreateElement("model")
	writeDocument(model, doc)

	parts := model.CreateElement("parts")
	ids := make([]string, 0, len(doc.Parts))
	for id := range doc.Parts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		part := parts.CreateElement("part")
		part.CreateAttr("id", id)
		writeDocument(part, doc.Parts[id])
	}

	if !e.Minify {
		x.Indent(2)
	}
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

// writeDocument adds the records of doc to el, without the part table.
func writeDocument(el *etree.Element, doc *ldraw.Document) {
	if doc.PartType != "" {
		el.CreateAttr("partType", doc.PartType)
	}
	for _, c := range doc.Comments {
		el.CreateElement("comment").SetText(c)
	}
	for _, ref := range doc.Subparts {
		sub := el.CreateElement("subpart")
		sub.CreateAttr("color", ref.Color.String())
		sub.CreateAttr("matrix", numbers(ref.Matrix[:]))
		sub.CreateAttr("partId", ref.PartID)
	}
	for _, l := range doc.Lines {
		rec := record(el, "line", l.Color)
		rec.CreateAttr("pos1", numbers(l.Pos1[:]))
		rec.CreateAttr("pos2", numbers(l.Pos2[:]))
	}
	for _, t := range doc.Tris {
		rec := record(el, "tri", t.Color)
		rec.CreateAttr("pos1", numbers(t.Pos1[:]))
		rec.CreateAttr("pos2", numbers(t.Pos2[:]))
		rec.CreateAttr("pos3", numbers(t.Pos3[:]))
	}
	for _, q := range doc.Quads {
		rec := record(el, "quad", q.Color)
		rec.CreateAttr("pos1", numbers(q.Pos1[:]))
		rec.CreateAttr("pos2", numbers(q.Pos2[:]))
		rec.CreateAttr("pos3", numbers(q.Pos3[:]))
		rec.CreateAttr("pos4", numbers(q.Pos4[:]))
	}
	for _, o := range doc.OptLines {
		rec := record(el, "optline", o.Color)
		rec.CreateAttr("pos1", numbers(o.Pos1[:]))
		rec.CreateAttr("pos2", numbers(o.Pos2[:]))
		rec.CreateAttr("ctl1", numbers(o.Ctl1[:]))
		rec.CreateAttr("ctl2", numbers(o.Ctl2[:]))
	}
}

func record(parent *etree.Element, tag string, color ldraw.Value) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("color", color.String())
	return el
}

// numbers formats values as a space-separated list.
func numbers(vs []float64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(s, " ")
}
