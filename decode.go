package ldraw

import (
	"math"
	"strconv"
	"strings"
)

// Minimum field counts per line type, control code included.
const (
	subpartFields = 15
	lineFields    = 8
	triFields     = 11
	quadFields    = 14
	optLineFields = 14
)

// orgTag marks the meta comment that classifies a library file.
const orgTag = "!LDRAW_ORG"

// noopMeta holds meta commands that carry no descriptive text. A comment is
// dropped only when it is exactly one of them; "0 WRITE Hello" is kept.
var noopMeta = map[string]bool{
	"STEP":  true,
	"WRITE": true,
	"PRINT": true,
	"CLEAR": true,
	"PAUSE": true,
	"SAVE":  true,
}

// Comment is a decoded comment line.
type Comment struct {
	// Text is the comment with its control code and surrounding space removed.
	Text string

	// PartType is the second token of a !LDRAW_ORG comment, if any.
	PartType string
}

// DecodeComment decodes a line whose control code is 0. The bool result is
// false for blank comments, "//" comments and bare no-op meta commands such
// as STEP, which produce no record.
func DecodeComment(line string) (Comment, bool) {
	text := strings.TrimLeft(line, " \t")
	text = strings.TrimPrefix(text, "0")
	text = strings.TrimSpace(text)

	if text == "" || noopMeta[text] || strings.HasPrefix(text, "//") {
		return Comment{}, false
	}

	fields := Fields(text)

	c := Comment{Text: text}
	if fields[0] == orgTag && len(fields) > 1 {
		c.PartType = fields[1]
	}
	return c, true
}

// DecodePartReference decodes a SUBPART line:
//
//	1 <colour> x y z a b c d e f g h i <file>
//
// The file name may contain spaces; every field after the matrix is joined
// back with single spaces before normalization.
func DecodePartReference(fields []string) (*PartReference, error) {
	if err := checkFields(LineSubpart, fields, subpartFields); err != nil {
		return nil, err
	}

	var n [12]float64
	for i := range n {
		v, err := number(fields[2+i])
		if err != nil {
			return nil, err
		}
		n[i] = v
	}
	x, y, z := n[0], n[1], n[2]
	a, b, c, d, e, f, g, h, i := n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]

	return &PartReference{
		Color: Convert(fields[1]),
		Matrix: Matrix{
			a, b, c, x,
			d, e, f, y,
			g, h, i, z,
			0, 0, 0, 1,
		},
		PartID: NormalizePartID(strings.Join(fields[14:], " ")),
	}, nil
}

// DecodeLine decodes a LINE record: 2 <colour> x1 y1 z1 x2 y2 z2.
func DecodeLine(fields []string) (*Line, error) {
	if err := checkFields(LineLine, fields, lineFields); err != nil {
		return nil, err
	}
	v, err := vectors(fields[2:lineFields])
	if err != nil {
		return nil, err
	}
	return &Line{Color: Convert(fields[1]), Pos1: v[0], Pos2: v[1]}, nil
}

// DecodeTri decodes a TRI record: 3 <colour> followed by three points.
func DecodeTri(fields []string) (*Tri, error) {
	if err := checkFields(LineTri, fields, triFields); err != nil {
		return nil, err
	}
	v, err := vectors(fields[2:triFields])
	if err != nil {
		return nil, err
	}
	return &Tri{Color: Convert(fields[1]), Pos1: v[0], Pos2: v[1], Pos3: v[2]}, nil
}

// DecodeQuad decodes a QUAD record: 4 <colour> followed by four points.
func DecodeQuad(fields []string) (*Quad, error) {
	if err := checkFields(LineQuad, fields, quadFields); err != nil {
		return nil, err
	}
	v, err := vectors(fields[2:quadFields])
	if err != nil {
		return nil, err
	}
	return &Quad{Color: Convert(fields[1]), Pos1: v[0], Pos2: v[1], Pos3: v[2], Pos4: v[3]}, nil
}

// DecodeOptLine decodes an OPTLINE record: 5 <colour> followed by the two
// line end points and the two control points.
func DecodeOptLine(fields []string) (*OptLine, error) {
	if err := checkFields(LineOptLine, fields, optLineFields); err != nil {
		return nil, err
	}
	v, err := vectors(fields[2:optLineFields])
	if err != nil {
		return nil, err
	}
	return &OptLine{Color: Convert(fields[1]), Pos1: v[0], Pos2: v[1], Ctl1: v[2], Ctl2: v[3]}, nil
}

func checkFields(t LineType, fields []string, want int) error {
	if len(fields) < want {
		return Errorf(EMALFORMED, "%s line needs %d fields, got %d", t, want, len(fields))
	}
	return nil
}

// vectors converts a flat list of coordinates into points.
func vectors(fields []string) ([]Vector, error) {
	out := make([]Vector, len(fields)/3)
	for i := range out {
		for j := 0; j < 3; j++ {
			v, err := number(fields[i*3+j])
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// number converts a coordinate or matrix field. Exponent forms such as
// "1e-05" have no decimal point and are not numeric to Convert, so they are
// retried as floats before the field is rejected. NaN and infinities are
// rejected too.
func number(field string) (float64, error) {
	n, ok := Convert(field).Number()
	if !ok {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, Errorf(EMALFORMED, "expected a number, got %q", field)
		}
		n = f
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, Errorf(EMALFORMED, "expected a finite number, got %q", field)
	}
	return n, nil
}
