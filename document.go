package ldraw

import (
	"context"
	"path/filepath"
	"strings"
)

// Vector is a point in model space.
type Vector [3]float64

// Matrix is a row-major 4x4 transform. The bottom row is always 0 0 0 1.
type Matrix [16]float64

// Identity is the identity transform.
var Identity = Matrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translation returns the translation column of m.
func (m Matrix) Translation() Vector {
	return Vector{m[3], m[7], m[11]}
}

// Document is the parsed content of one model or part file.
// Collections are nil when the file had no qualifying record of that kind.
type Document struct {
	PartType string           `json:"partType,omitempty"`
	Comments []string         `json:"comments,omitempty"`
	Subparts []*PartReference `json:"subparts,omitempty"`
	Lines    []*Line          `json:"lines,omitempty"`
	Tris     []*Tri           `json:"tris,omitempty"`
	Quads    []*Quad          `json:"quads,omitempty"`
	OptLines []*OptLine       `json:"optlines,omitempty"`

	// Parts maps every resolved part ID to its document.
	// Only the root document of a parse session carries it.
	Parts map[string]*Document `json:"parts,omitempty"`
}

// PartReference places a part inside its parent document.
type PartReference struct {
	Color  Value  `json:"color"`
	Matrix Matrix `json:"matrix"`
	PartID string `json:"partId"`
}

// Line is a line segment between two points.
type Line struct {
	Color Value  `json:"color"`
	Pos1  Vector `json:"pos1"`
	Pos2  Vector `json:"pos2"`
}

// Tri is a filled triangle.
type Tri struct {
	Color Value  `json:"color"`
	Pos1  Vector `json:"pos1"`
	Pos2  Vector `json:"pos2"`
	Pos3  Vector `json:"pos3"`
}

// Quad is a filled quadrilateral.
type Quad struct {
	Color Value  `json:"color"`
	Pos1  Vector `json:"pos1"`
	Pos2  Vector `json:"pos2"`
	Pos3  Vector `json:"pos3"`
	Pos4  Vector `json:"pos4"`
}

// OptLine is a line drawn only when both control points lie on the same side
// of it as seen from the viewer.
type OptLine struct {
	Color Value  `json:"color"`
	Pos1  Vector `json:"pos1"`
	Pos2  Vector `json:"pos2"`
	Ctl1  Vector `json:"ctl1"`
	Ctl2  Vector `json:"ctl2"`
}

// NormalizePartID lower-cases a part name and converts both path separator
// styles to the host separator. The result is used as the part cache key.
func NormalizePartID(name string) string {
	id := strings.ToLower(name)
	sep := string(filepath.Separator)
	id = strings.ReplaceAll(id, "\\", sep)
	return strings.ReplaceAll(id, "/", sep)
}

// ModelParser parses a model file and every part it transitively references.
type ModelParser interface {
	// ParseModel resolves name, parses it and its parts, and returns the root
	// document with Parts populated.
	// Returns ENOTFOUND if the model itself cannot be located.
	ParseModel(ctx context.Context, name string) (*Document, error)
}
