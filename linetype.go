package ldraw

import (
	"strconv"
	"strings"
)

// LineType identifies the record carried by a line. Its value is the line's
// control code.
type LineType uint8

// LineType constants, in control code order.
const (
	LineComment LineType = iota
	LineSubpart
	LineLine
	LineTri
	LineQuad
	LineOptLine
)

// lineTypeCount is the size of the control code table.
const lineTypeCount = 6

var lineTypeNames = [lineTypeCount]string{
	LineComment: "COMMENT",
	LineSubpart: "SUBPART",
	LineLine:    "LINE",
	LineTri:     "TRI",
	LineQuad:    "QUAD",
	LineOptLine: "OPTLINE",
}

// LineTypes returns every line type in control code order.
func LineTypes() []LineType {
	return []LineType{LineComment, LineSubpart, LineLine, LineTri, LineQuad, LineOptLine}
}

// String returns the upper-case name used in skip lists.
func (t LineType) String() string {
	if int(t) < lineTypeCount {
		return lineTypeNames[t]
	}
	return "LineType(" + strconv.Itoa(int(t)) + ")"
}

// ParseLineType returns the line type with the given name, ignoring case.
func ParseLineType(name string) (LineType, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range lineTypeNames {
		if n == name {
			return LineType(i), nil
		}
	}
	return 0, Errorf(EINVALID, "unknown line type %q", name)
}

// ClassifyLine splits a line into fields and maps its control code to a line
// type. The bool result is false for blank lines and for lines whose first
// field is not a known control code; such lines are skipped, not rejected.
func ClassifyLine(line string) (LineType, []string, bool) {
	fields := Fields(line)
	if len(fields) == 0 {
		return 0, nil, false
	}
	// A control code is a single digit; "+1", "-0" and "01" are not codes.
	code := fields[0]
	if len(code) != 1 || code[0] < '0' || code[0] >= '0'+lineTypeCount {
		return 0, fields, false
	}
	return LineType(code[0] - '0'), fields, true
}

// LineTypeSet is a set of line types.
type LineTypeSet uint8

// NewLineTypeSet returns a set holding types.
func NewLineTypeSet(types ...LineType) LineTypeSet {
	var s LineTypeSet
	for _, t := range types {
		s = s.With(t)
	}
	return s
}

// ParseLineTypes builds a set from line type names such as "tri" or "COMMENT".
// Empty names are ignored.
func ParseLineTypes(names []string) (LineTypeSet, error) {
	var s LineTypeSet
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, err := ParseLineType(name)
		if err != nil {
			return 0, err
		}
		s = s.With(t)
	}
	return s, nil
}

// Has reports whether t is in the set.
func (s LineTypeSet) Has(t LineType) bool {
	return t < lineTypeCount && s&(1<<t) != 0
}

// With returns a copy of the set that also holds t.
func (s LineTypeSet) With(t LineType) LineTypeSet {
	if t >= lineTypeCount {
		return s
	}
	return s | 1<<t
}

// Types returns the members of the set in control code order.
func (s LineTypeSet) Types() []LineType {
	var types []LineType
	for _, t := range LineTypes() {
		if s.Has(t) {
			types = append(types, t)
		}
	}
	return types
}

// String returns the member names joined with ", ".
func (s LineTypeSet) String() string {
	types := s.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
