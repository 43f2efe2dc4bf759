package sqlite

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/ldraw"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatMatrix stores a transform as its 16 values separated by spaces.
func formatMatrix(m ldraw.Matrix) string {
	s := make([]string, len(m))
	for i, v := range m {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(s, " ")
}

// parseMatrix reverses formatMatrix.
func parseMatrix(value string) (ldraw.Matrix, error) {
	var m ldraw.Matrix
	fields := strings.Fields(value)
	if len(fields) != len(m) {
		return m, fmt.Errorf("failed to parse matrix: want %d values, got %d", len(m), len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return m, fmt.Errorf("failed to parse matrix: %w", err)
		}
		m[i] = v
	}
	return m, nil
}
